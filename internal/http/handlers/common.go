package handlers

import intconfig "poolside/internal/config"

var (
	env       intconfig.Env
	jwtSecret []byte
)

// Configure wires the loaded environment into the handler package; the
// router calls it once at startup.
func Configure(e intconfig.Env) {
	env = e
	jwtSecret = []byte(e.JWTSecret)
}
