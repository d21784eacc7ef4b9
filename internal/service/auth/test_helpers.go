package auth

import (
	"time"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/config"
)

// NewJWTServiceWithTimeFunc creates a JWT service whose notion of "now" is
// supplied by the caller. Intended for tests that need to exercise
// expiration without sleeping.
func NewJWTServiceWithTimeFunc(
	cfg config.AuthConfig,
	timeFunc func() time.Time,
) (JWTService, error) {
	svc, err := NewJWTService(cfg)
	if err != nil {
		return nil, err
	}

	impl := svc.(*hmacJWTService)
	impl.timeFunc = timeFunc
	impl.clockSkew = 0
	return impl, nil
}
