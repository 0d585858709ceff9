// Package jenkins implements the build cache (C1) and the CI polling state
// machine (C2): it periodically fetches each configured CI server's job
// listing, diffs it against the cache, and emits UpdatedJob events for
// builds that have newly completed.
package jenkins

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/arekfu/carlo/events"
	"github.com/arekfu/carlo/go/httputils"
	"github.com/arekfu/carlo/go/metrics2"
	"github.com/arekfu/carlo/go/sklog"
	"github.com/arekfu/carlo/go/util"
	"github.com/google/uuid"
)

// jBuild mirrors the "lastBuild" object in a CI server's JSON payload.
type jBuild struct {
	Result    *string `json:"result"`
	Timestamp uint64  `json:"timestamp"`
	Number    uint32  `json:"number"`
	Duration  uint32  `json:"duration"`
	URL       string  `json:"url"`
}

type jJob struct {
	Name      string `json:"name"`
	LastBuild jBuild `json:"lastBuild"`
}

type jPayload struct {
	Jobs []jJob `json:"jobs"`
}

// Poller is the CI polling state machine (C2). It owns one BuildCache
// exclusively; nothing else may read or write it.
type Poller struct {
	client *http.Client
	cache  *BuildCache
}

// NewPoller returns a Poller with a fresh, empty BuildCache.
func NewPoller() *Poller {
	return &Poller{
		client: httputils.NewTimeoutClient(httputils.DefaultTimeout),
		cache:  NewBuildCache(),
	}
}

// Listen runs the polling loop until ctx is canceled, sending UpdatedJob
// events on emit. It is the single blocking operation CIPoller exposes; the
// caller is expected to run it in its own goroutine.
func (p *Poller) Listen(ctx context.Context, config GlobalConfig, emit chan<- events.Event) {
	interval := time.Duration(config.SleepSeconds) * time.Second
	for {
		tickID := uuid.New().String()
		metrics2.GetCounter("carlo_poll_ticks", nil).Inc()

		for _, jc := range config.Jobs {
			if ctx.Err() != nil {
				return
			}
			p.pollOne(ctx, tickID, jc, emit)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
	}
}

// pollOne performs one server's per-tick algorithm: fetch, prune, diff,
// emit. A failure here is logged and skipped; it never stops the loop or
// delays other servers in the same tick.
func (p *Poller) pollOne(ctx context.Context, tickID string, jc CIServerConfig, emit chan<- events.Event) {
	errCounter := metrics2.GetCounter("carlo_poll_errors", map[string]string{"server": jc.ID})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, jc.Server, nil)
	if err != nil {
		sklog.Errorf("[%s] jenkins: building request for %s failed: %s", tickID, jc.ID, err)
		errCounter.Inc()
		return
	}
	req.SetBasicAuth(jc.User, jc.Token)

	resp, err := p.client.Do(req)
	if err != nil {
		sklog.Errorf("[%s] jenkins: request to %s failed: %s", tickID, jc.ID, err)
		errCounter.Inc()
		return
	}
	defer httputils.ReadAndClose(resp.Body)

	var payload jPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		sklog.Errorf("[%s] jenkins: decoding response from %s failed: %s", tickID, jc.ID, err)
		errCounter.Inc()
		return
	}

	keep := util.NewStringSet()
	for _, j := range payload.Jobs {
		keep[j.Name] = true
	}
	p.cache.PruneExcept(jc.ID, keep)
	metrics2.GetGauge("carlo_cache_size", map[string]string{"server": jc.ID}).Update(float64(p.cache.Size(jc.ID)))

	for _, j := range payload.Jobs {
		if j.LastBuild.Result == nil {
			// Build in progress: contributed its name to the prune-keep set
			// above, but must not touch the cache or emit.
			continue
		}

		newTimestamp := j.LastBuild.Timestamp
		prev, existed := p.cache.Insert(jc.ID, j.Name, newTimestamp)
		if !existed {
			// First observation of a completed build for this job: a
			// freshly-started bot must not announce every historical build.
			continue
		}

		switch {
		case prev < newTimestamp:
			emit <- events.UpdatedJob{
				ServerID: jc.ID,
				Name:     j.Name,
				Result:   *j.LastBuild.Result,
				Number:   j.LastBuild.Number,
				Duration: j.LastBuild.Duration,
				URL:      j.LastBuild.URL,
				Notify:   jc.Notify,
			}
		case prev == newTimestamp:
			// Unchanged.
		default:
			sklog.Warningf("[%s] jenkins: job %s on %s went back in time from %d to %d", tickID, j.Name, jc.ID, prev, newTimestamp)
		}
	}
}
