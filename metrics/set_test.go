package metrics_test

import (
	"io"
	"net/http/httptest"

	"github.com/cpv-project/cpv-framework-sub001/connection"
	"github.com/cpv-project/cpv-framework-sub001/metrics"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ connection.Metrics = (*metrics.Set)(nil)

func scrape(s *metrics.Set) string {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	s.Handler().ServeHTTP(rec, req)
	body, _ := io.ReadAll(rec.Result().Body)
	return string(body)
}

var _ = Describe("Set", func() {
	var cfg metrics.Config

	BeforeEach(func() {
		cfg = metrics.Config{Prefix: "cpv", Hostname: "host1", ServiceID: "0", MetricHelp: true}
	})

	It("counts connections opened and closed", func() {
		s := metrics.New(cfg)
		s.ConnectionOpened()
		s.ConnectionOpened()
		s.ConnectionClosed()

		body := scrape(s)
		Expect(body).To(ContainSubstring(`cpv_http_server_total_connections{hostname="host1",service_id="0"} 2`))
		Expect(body).To(ContainSubstring(`cpv_http_server_current_connections{hostname="host1",service_id="0"} 1`))
	})

	It("counts requests served and read/write errors", func() {
		s := metrics.New(cfg)
		s.RequestServed()
		s.RequestServed()
		s.ReadError()
		s.WriteError()

		body := scrape(s)
		Expect(body).To(ContainSubstring(`cpv_http_server_request_served{hostname="host1",service_id="0"} 2`))
		Expect(body).To(ContainSubstring(`cpv_http_server_read_errors{hostname="host1",service_id="0"} 1`))
		Expect(body).To(ContainSubstring(`cpv_http_server_write_errors{hostname="host1",service_id="0"} 1`))
	})

	It("omits Help text when MetricHelp is false", func() {
		cfg.MetricHelp = false
		s := metrics.New(cfg)

		body := scrape(s)
		Expect(body).NotTo(ContainSubstring("# HELP cpv_http_server_total_connections total"))
	})
})
