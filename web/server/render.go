package server

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"github.com/df07/phong-raytracer/pkg/renderer"
)

// handleRender renders one view and responds with a PNG image.
//
// Optional width and height override the view's resolution, keeping its
// field of view. A client disconnect cancels the render.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	sceneObj, view, ok := s.lookupView(w, query)
	if !ok {
		return
	}

	vp := view.Camera.Viewport()
	width, err := parseIntParam(query, "width", vp.Width, 1, MaxImageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	height, err := parseIntParam(query, "height", vp.Height, 1, MaxImageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if width != vp.Width || height != vp.Height {
		vp.Width, vp.Height = width, height
		view.Camera = view.Camera.WithViewport(vp)
	}

	logger := NewWebLogger(s.newRenderID(sceneObj.Name, view.Name), s.consoleChan)
	raytracer := renderer.NewRaytracer(sceneObj, s.renderConf, logger)

	// Use request context to detect client disconnection
	fb, stats, err := raytracer.Render(r.Context(), view)
	if errors.Is(err, context.Canceled) {
		log.Printf("Render %s/%s cancelled by client", sceneObj.Name, view.Name)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Render error: "+err.Error())
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, fb.ToRGBA()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode image: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
