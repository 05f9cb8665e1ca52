package service

import (
	"context"
	"time"

	"github.com/MKhiriev/dashboard-server/internal/config"
	"github.com/MKhiriev/dashboard-server/internal/logger"
	"github.com/MKhiriev/dashboard-server/internal/utils"
	"github.com/MKhiriev/dashboard-server/models"
)

// configService serves the configuration snapshot computed at startup.
// The snapshot is never re-resolved; a change to the runtime config file
// takes effect on restart.
type configService struct {
	resolved config.ResolvedConfig
	script   []byte

	now    func() time.Time
	logger *logger.Logger
}

// NewConfigService renders the env-config.js script once and returns a
// ConfigService serving resolved.
func NewConfigService(resolved config.ResolvedConfig, logger *logger.Logger) (ConfigService, error) {
	script, err := config.RenderRuntimeScript(resolved.RuntimeEnv())
	if err != nil {
		return nil, err
	}

	return &configService{
		resolved: resolved,
		script:   script,
		now:      time.Now,
		logger:   logger,
	}, nil
}

func (s *configService) Resolved(ctx context.Context) config.ResolvedConfig {
	return s.resolved
}

// View implements ConfigService. The access token is reduced to whatever
// its JWT claims reveal; a token that is not a JWT is reported as present
// without details.
func (s *configService) View(ctx context.Context) models.ConfigView {
	view := models.ConfigView{
		APIBaseURL:         s.resolved.APIBaseURL,
		IsLocalDevelopment: s.resolved.IsLocalDevelopment,
		AuthEnabled:        s.resolved.AuthEnabled,
		AuthRequired:       s.resolved.AuthRequired(),
		HasAccessToken:     s.resolved.HasAccessToken(),
		Sources:            make(map[string]string, len(s.resolved.Sources)),
	}
	for field, source := range s.resolved.Sources {
		view.Sources[field] = string(source)
	}

	if !s.resolved.HasAccessToken() {
		return view
	}

	info, err := utils.InspectToken(s.resolved.AccessToken, s.now())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("access token is not a JWT")
		info = models.TokenInfo{}
	}
	view.Token = &info

	return view
}

func (s *configService) RuntimeScript(ctx context.Context) ([]byte, error) {
	return s.script, nil
}
