package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/IDNLab/ddl-parser/internal/engine"
	"github.com/IDNLab/ddl-parser/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the parse and convert API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		// fail on bad defaults before listening
		opts := pipelineOptions()
		if _, err := engine.New(cat, opts, nil); err != nil {
			return err
		}

		gin.SetMode(gin.ReleaseMode)
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		srv := server.New(cat, opts, reg, log.Default()).HTTPServer(viper.GetString("server.addr"))

		errCh := make(chan error, 1)
		go func() {
			log.Printf("Server listening on %s\n", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- fmt.Errorf("http server error: %w", err)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case err := <-errCh:
			return err
		case <-quit:
		}

		log.Println("Shutting down server gracefully ...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Println("Server Shutdown:", err)
		}
		log.Println("Server exiting")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "Listen address (overrides config)")
	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}
