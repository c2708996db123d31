// Package importer resolves pasted Discord template links into board posts:
// it extracts the template code from the link, fetches the template from the
// public lookup endpoint, and maps the payload into a display-ready post.
package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/rowanvale/templateboard/internal/domain"
)

const DefaultBaseURL = "https://discord.com/api/v9/guilds/templates"

// ErrLookup covers any non-success answer from the lookup endpoint. Callers
// only need to know the template could not be resolved; the status code is
// logged, not returned.
var ErrLookup = errors.New("template lookup failed")

type Importer struct {
	client  *http.Client
	baseURL string
	newID   func() string
	now     func() time.Time
}

func New(client *http.Client, baseURL string) *Importer {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Importer{
		client:  client,
		baseURL: baseURL,
		newID:   uuid.NewString,
		now:     time.Now,
	}
}

// Fetch issues a single unauthenticated GET for the template code. Only a
// 2xx answer counts as success. Transport errors and server-side failures
// are retried a few times with backoff; anything below 500 means the
// template does not exist or is private, which no retry will fix.
func (i *Importer) Fetch(ctx context.Context, code string) (tmpl domain.Template, err error) {
	endpoint := i.baseURL + "/" + code

	err = retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
			if err != nil {
				return retry.Unrecoverable(err)
			}

			res, err := i.client.Do(req)
			if err != nil {
				log.Warn().Err(err).Str("code", code).Msg("template fetch failed, will retry")
				return err
			}
			defer res.Body.Close()

			if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
				body, _ := io.ReadAll(res.Body)
				log.Error().Int("status", res.StatusCode).Bytes("response", body).Msg("lookup error")
				err = fmt.Errorf("%w: %d %s", ErrLookup, res.StatusCode, res.Status)
				if res.StatusCode < http.StatusInternalServerError {
					return retry.Unrecoverable(err)
				}
				return err
			}

			if err := json.NewDecoder(res.Body).Decode(&tmpl); err != nil {
				log.Error().Err(err).Msg("response body unmarshaling error")
				return retry.Unrecoverable(fmt.Errorf("%w: %s", ErrLookup, err))
			}
			return nil
		},
		retry.Attempts(3),
		retry.Delay(time.Second),
		retry.MaxDelay(10*time.Second),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)

	if err != nil && !errors.Is(err, ErrLookup) {
		err = fmt.Errorf("%w: %s", ErrLookup, err)
	}
	return
}
