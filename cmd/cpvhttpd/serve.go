/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/cpv-project/cpv-framework-sub001/buffer"
	"github.com/cpv-project/cpv-framework-sub001/httpserver"
	"github.com/cpv-project/cpv-framework-sub001/logger"
	"github.com/cpv-project/cpv-framework-sub001/metrics"
	"github.com/cpv-project/cpv-framework-sub001/pipeline"
	"github.com/cpv-project/cpv-framework-sub001/runner/ticker"
)

// welcomeHandler answers every request with a one-line greeting; it
// stands in for whatever intermediates a real deployment registers
// before the fixed not-found tail.
var welcomeHandler = pipeline.HandlerFunc(func(pc *pipeline.Context, next pipeline.Next) error {
	pc.Response.SetBodyLiteral(buffer.FromString("cpvhttpd is running\n"))
	return nil
})

func runServe() error {
	log := logger.New()
	log.SetLevel(logger.GetLevelString(viper.GetString("logging.log_level")))

	mset := metrics.New(metrics.Config{
		Prefix:     viper.GetString("prometheus.prefix"),
		Hostname:   resolveHostname(viper.GetString("prometheus.hostname")),
		ServiceID:  "0",
		MetricHelp: viper.GetBool("prometheus.metric_help"),
	})

	metricsSrv := &http.Server{Addr: ":9090", Handler: mset.Handler()}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("metrics server stopped", err)
		}
	}()

	pl := pipeline.New(log, nil, welcomeHandler)

	cfg := httpserver.DefaultConfig()
	cfg.ListenHost = viper.GetString("httpd.listen_hostname")
	cfg.ListenPort = viper.GetInt("httpd.listen_port")

	srv := httpserver.New(cfg, pl, log, mset, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Listen(ctx); err != nil {
		return err
	}
	log.Info("cpvhttpd started", nil, "addr=%s", srv.Addr().String())

	heartbeat := ticker.New(30*time.Second, func(tctx context.Context, _ *time.Ticker) error {
		log.Info("heartbeat", nil, "current_connections=%d", mset.CurrentConnections())
		return nil
	})
	if err := heartbeat.Start(ctx); err != nil {
		log.Warning("heartbeat not started", nil)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	<-quit

	log.Info("cpvhttpd shutting down", nil)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	_ = heartbeat.Stop(shutdownCtx)
	_ = metricsSrv.Shutdown(shutdownCtx)
	return srv.Stop(shutdownCtx)
}

// resolveHostname falls back to os.Hostname when the config key is left
// empty, so the per-core metric label is always populated.
func resolveHostname(configured string) string {
	if configured != "" {
		return configured
	}
	if h, err := os.Hostname(); err == nil {
		return h
	}
	return "unknown"
}
