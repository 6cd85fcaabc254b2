package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/DeadSix27/dfind/app"
	webapp "github.com/DeadSix27/dfind/web/run"
)

func main() {
	configPath := flag.String("config", app.DefaultConfigPath(), "path to the configuration file")
	listen := flag.String("listen", "", "listen address, overrides the configured port")
	flag.Parse()

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	wa := webapp.NewWebApp(cfg)
	addr := wa.GetListenAddr()
	if *listen != "" {
		addr = *listen
	}

	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, wa.GetRouter()); err != nil {
		log.Fatal(err)
	}
}
