package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pmlaogao/portal/internal/logger"
	"github.com/pmlaogao/portal/internal/portal"
)

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	TimeNow      func() time.Time // for testing, defaults to time.Now
	AllowedHosts []string         // Host headers allowed to access the server
	AllowedCIDRS []string         // IPs allowed to reach health/admin endpoints
	TrustProxy   bool             // true if running behind a trusted reverse proxy (e.g., cloudflared)
	Portal       *portal.Service  // portal operations facade
	RedisClient  *redis.Client    // nil when the in-memory store backs the portal
	AltLoginURL  string           // destination encoded into the login QR code
}
