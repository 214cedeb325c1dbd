package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/df07/phong-raytracer/pkg/renderer"
	"github.com/df07/phong-raytracer/pkg/scene"
)

// MaxImageSize bounds the width and height a client may request
const MaxImageSize = 2048

// Server handles web requests for the raytracer
type Server struct {
	port        int
	sceneOpts   scene.Options
	renderConf  renderer.Config
	consoleChan chan ConsoleMessage

	mu     sync.Mutex
	scenes map[string]*scene.Scene // Built scenes are read-only and shared between requests
	nextID int
}

// NewServer creates a new web server
func NewServer(port int, sceneOpts scene.Options) *Server {
	return &Server{
		port:        port,
		sceneOpts:   sceneOpts,
		renderConf:  renderer.DefaultConfig(),
		consoleChan: make(chan ConsoleMessage, 100),
		scenes:      make(map[string]*scene.Scene),
	}
}

// SceneInfo describes a scene and its views
type SceneInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Views       []string `json:"views"`
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/console", s.handleConsole)

	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes with their view names
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	var scenes []SceneInfo
	for _, info := range scene.ListScenes() {
		sceneObj, err := s.getScene(info.Name)
		if err != nil {
			log.Printf("Failed to build scene %s: %v", info.Name, err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		scenes = append(scenes, SceneInfo{
			Name:        info.Name,
			Description: info.Description,
			Views:       sceneObj.ViewNames(),
		})
	}
	writeJSON(w, http.StatusOK, scenes)
}

// getScene returns the cached scene, building it on first use
func (s *Server) getScene(name string) (*scene.Scene, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sceneObj, ok := s.scenes[name]; ok {
		return sceneObj, nil
	}
	sceneObj, err := scene.Lookup(name, s.sceneOpts)
	if err != nil {
		return nil, err
	}
	s.scenes[name] = sceneObj
	return sceneObj, nil
}

// lookupView resolves the scene and view query parameters, writing the error
// response itself when they do not name an existing view
func (s *Server) lookupView(w http.ResponseWriter, values url.Values) (*scene.Scene, scene.View, bool) {
	sceneName := values.Get("scene")
	if sceneName == "" {
		sceneName = "classic" // Default scene
	}

	sceneObj, err := s.getScene(sceneName)
	if errors.Is(err, scene.ErrUnknownScene) {
		writeError(w, http.StatusNotFound, "Unknown scene: "+sceneName)
		return nil, scene.View{}, false
	}
	if err != nil {
		log.Printf("Failed to build scene %s: %v", sceneName, err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, scene.View{}, false
	}

	viewName := values.Get("view")
	if viewName == "" && len(sceneObj.Views) > 0 {
		viewName = sceneObj.Views[0].Name
	}
	view, ok := sceneObj.View(viewName)
	if !ok {
		writeError(w, http.StatusNotFound, "Unknown view: "+viewName)
		return nil, scene.View{}, false
	}

	return sceneObj, view, true
}

// newRenderID returns a unique label for log messages of one request
func (s *Server) newRenderID(sceneName, viewName string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	return fmt.Sprintf("%s/%s#%d", sceneName, viewName, s.nextID)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
