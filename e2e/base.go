package e2e

import (
	"circuits-lab/auth"
	"circuits-lab/infrastructure/recnet"
	"circuits-lab/infrastructure/transport"
	"circuits-lab/services"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseSuite struct {
	suite.Suite
	Config Config
	Client *services.Client
}

// SetupSuite loads the environment configuration and skips the suite when
// no live account is configured.
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if !s.Config.Enabled() {
		s.T().Skip("RR_ACCESS_TOKEN and E2E_ROOM are required for the live suite")
	}

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	tokens := auth.StaticToken(s.Config.AccessToken)
	tr := transport.NewTransport(transport.Config{
		HTTPClient: &loggingDoer{suite: s, next: &http.Client{Timeout: 15 * time.Second}},
		Tokens:     tokens,
		Logger:     log,
	})
	api := recnet.NewClient(log, tr, recnet.DefaultEndpoints())
	s.Client = services.NewClient(services.ClientConfig{
		Tokens: tokens, Roles: api, Rooms: api, Accounts: api, Presence: api, Photos: api,
		Logger: log,
	})
	s.Require().NoError(s.Client.Initialize(context.Background()))
}

func (s *BaseSuite) TearDownSuite() {
	if s.Client != nil {
		_ = s.Client.Close()
	}
}

// Step prints a colorized header and runs fn with a bounded context.
func (s *BaseSuite) Step(name string, fn func(ctx context.Context)) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	fn(ctx)
}

// loggingDoer traces each request in the test log when E2E_DEBUG_HTTP is on.
type loggingDoer struct {
	suite *BaseSuite
	next  transport.HTTPDoer
}

func (d *loggingDoer) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := d.next.Do(req)
	if d.suite.Config.DebugHTTP {
		status := "ERR"
		if resp != nil {
			status = resp.Status
		}
		d.suite.T().Logf("HTTP %s %s [%s] in %v", req.Method, req.URL.Redacted(), status, time.Since(start))
	}
	return resp, err
}
