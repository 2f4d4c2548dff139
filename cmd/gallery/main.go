package main

import (
	"flag"
	"log"
	"net/http"

	"coplot/internal/app"
	"coplot/internal/gallery"
)

func main() {
	cfg, err := app.FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	addr := flag.String("addr", cfg.Addr, "listen address")
	flag.Parse()

	wire, err := app.NewWire(cfg)
	if err != nil {
		log.Fatal(err)
	}
	srv := gallery.NewServer(wire.Figures, log.Default())

	log.Println("gallery listening on", *addr)
	log.Fatal(http.ListenAndServe(*addr, srv))
}
