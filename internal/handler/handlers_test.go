package handler

import (
	"testing"

	"github.com/MKhiriev/veepo/internal/config"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Handlers only keep the services and hub pointers at construction time, so
// nil is enough here.
func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name          string
		cfg           config.Server
		wantHTTP      bool
		wantPrototype bool
		wantErr       error
	}{
		{
			name:          "both addresses",
			cfg:           config.Server{HTTPAddress: ":8080", PrototypeAddress: ":4000"},
			wantHTTP:      true,
			wantPrototype: true,
		},
		{
			name:     "only api",
			cfg:      config.Server{HTTPAddress: ":8080"},
			wantHTTP: true,
		},
		{
			name:          "only prototype",
			cfg:           config.Server{PrototypeAddress: ":4000"},
			wantPrototype: true,
		},
		{
			name:    "no addresses",
			cfg:     config.Server{},
			wantErr: errNoHandlersAreCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(nil, nil, tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantPrototype, h.Prototype != nil)
		})
	}
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080", PrototypeAddress: ":4000"}

	h1, err1 := NewHandlers(nil, nil, cfg, logger.Nop())
	h2, err2 := NewHandlers(nil, nil, cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
	assert.NotSame(t, h1.Prototype, h2.Prototype)
}
