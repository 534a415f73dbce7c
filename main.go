package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/linesmerrill/mergington-announcements-api/api/handlers"
	"github.com/linesmerrill/mergington-announcements-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	ctx := context.Background()
	//initialize database and router
	if err := a.Initialize(ctx); err != nil {
		log.Fatal(err)
	}
	defer a.Close(ctx)

	zap.S().Infow("mergington-announcements-api is up and running",
		"port", a.Config.Port,
		"url", a.Config.BaseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", a.Config.Port), a.Router))
}
