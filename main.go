package main

import (
	"log"
	"net/http"
	"os"

	"github.com/DevarshLade/lade-studio/app/cmd"
	"github.com/DevarshLade/lade-studio/app/configs"
	"github.com/DevarshLade/lade-studio/app/routes"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	router := routes.NewRouter(db, env)

	addr := env.Port
	if addr == "" {
		addr = ":8080"
	}

	server := http.Server{
		Addr:    addr,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}

}
