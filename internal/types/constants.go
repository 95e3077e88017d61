package types

import (
	"os"
	"strings"
)

// ContextUserKey is where the auth middleware stores the authenticated
// account for the duration of a request.
const ContextUserKey = "user"

// AllowedOrigins lists the browser origins permitted to call the API and to
// open the task feed. The llmdesk SPA's Vite dev and preview servers are
// always included; deployments add their origin via CLIENT_URL or the
// comma-separated ALLOWED_ORIGINS.
var AllowedOrigins = initAllowedOrigins()

func initAllowedOrigins() []string {
	origins := []string{
		"http://localhost:5173", // vite dev server
		"http://localhost:4173", // vite preview
	}

	if clientURL := strings.TrimSpace(os.Getenv("CLIENT_URL")); clientURL != "" {
		origins = append(origins, clientURL)
	}

	for _, origin := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}
