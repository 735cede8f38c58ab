package main

import (
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"

	sse "github.com/alexandrevicenzi/go-sse"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/mastercactapus/melt/config"
	"github.com/mastercactapus/melt/melt"
	"github.com/mastercactapus/melt/preview"
)

type api struct {
	http.Handler
	cfg config.Config
	pal preview.Palette
	sse *sse.Server
	ws  websocket.Upgrader
}

type insertionEvent struct {
	Layer   int       `json:"layer"`
	Tool    int       `json:"tool"`
	Z       float64   `json:"z"`
	Mix     []float64 `json:"mix"`
	Command string    `json:"command"`
	Color   string    `json:"color"`
}

func newAPI(cfg config.Config) (*api, error) {
	pal, err := preview.ParsePalette(cfg.Colors)
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()
	a := &api{
		Handler: r,
		cfg:     cfg,
		pal:     pal,
		sse: sse.NewServer(&sse.Options{
			Logger: log.New(ioutil.Discard, "", 0),
		}),
		ws: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	r.Use(logRequests)
	r.HandleFunc("/api/process", a.process).Methods("POST")
	r.HandleFunc("/api/config", a.config).Methods("GET")
	r.HandleFunc("/api/preview", a.preview).Methods("GET")
	r.HandleFunc("/ws/layers", a.layers)
	r.PathPrefix("/events/").Handler(a.sse)

	return a, nil
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		log.Printf("%s %s - %s", req.Method, req.URL.Path, req.RemoteAddr)
		next.ServeHTTP(w, req)
	})
}

func (a *api) options() (melt.Options, error) {
	opt, err := a.cfg.Options()
	if err != nil {
		return opt, err
	}
	opt.Observer = func(in melt.Insertion) {
		data, err := json.Marshal(insertionEvent{
			Layer:   in.Layer,
			Tool:    in.Tool,
			Z:       in.Z,
			Mix:     in.Mix,
			Command: in.Command,
			Color:   a.pal.Hex(in.Mix),
		})
		if err != nil {
			log.Printf("ERROR: marshal json: %+v", err)
			return
		}
		a.sse.SendMessage("/events/insertions", sse.SimpleMessage(string(data)))
	}
	return opt, nil
}

func (a *api) process(w http.ResponseWriter, req *http.Request) {
	opt, err := a.options()
	if err != nil {
		log.Printf("ERROR: options: %+v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	err = rewrite(opt, req.Body, w)
	if err != nil {
		log.Printf("ERROR: process: %+v", err)
	}
}

func (a *api) config(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(a.cfg)
	if err != nil {
		log.Println("ERROR: encode:", err)
	}
}

func (a *api) preview(w http.ResponseWriter, req *http.Request) {
	r, err := config.ParseList(req.FormValue("mix"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(struct {
		Color string `json:"color"`
	}{a.pal.Hex(r)})
	if err != nil {
		log.Println("ERROR: encode:", err)
	}
}

// layers rewrites one layer block per text message. Each connection gets its
// own Rewriter, so a client streams a single print per connection.
func (a *api) layers(w http.ResponseWriter, req *http.Request) {
	opt, err := a.options()
	if err != nil {
		log.Printf("ERROR: options: %+v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rw, err := melt.New(melt.Config{Options: opt})
	if err != nil {
		log.Printf("ERROR: new rewriter: %+v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	ws, err := a.ws.Upgrade(w, req, nil)
	if err != nil {
		log.Printf("ERROR: upgrade: %+v", err)
		return
	}
	defer ws.Close()

	for {
		typ, data, err := ws.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("ERROR: read layer: %+v", err)
			}
			return
		}
		if typ != websocket.TextMessage {
			continue
		}
		err = ws.WriteMessage(websocket.TextMessage, []byte(rw.Layer(string(data))))
		if err != nil {
			log.Printf("ERROR: write layer: %+v", err)
			return
		}
	}
}
