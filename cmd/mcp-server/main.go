package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/macrodata/fredhub/internal/config"
	"github.com/macrodata/fredhub/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:   "mcp-server",
		Short: "FRED MCP server",
		RunE:  run,
	}

	root.PersistentFlags().String("fred-api-key", "", "FRED API key")
	root.PersistentFlags().String("fred-base-url", "", "FRED API base URL override")
	root.PersistentFlags().Duration("fred-http-timeout", 30*time.Second, "Upstream call timeout")
	root.PersistentFlags().String("transport", "http", "Transport to serve on (http or stdio)")
	root.PersistentFlags().Int("port", 8000, "HTTP port")
	root.PersistentFlags().String("host", "0.0.0.0", "HTTP host")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	srv := mcp.New(mcp.DefaultConfig())

	transport, _ := cmd.Flags().GetString("transport")
	switch transport {
	case "stdio":
		return srv.ServeStdio()
	case "http":
	default:
		return fmt.Errorf("unknown transport %q", transport)
	}

	host, _ := cmd.Flags().GetString("host")
	port, _ := cmd.Flags().GetInt("port")
	addr := host + ":" + strconv.Itoa(port)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("MCP server listening on %s", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
