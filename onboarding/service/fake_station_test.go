package service

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stationhealth/onboarding-api/onboarding/station"
)

type call struct {
	Method string
	Path   string
	Query  string
	Body   map[string]interface{}
}

type reply struct {
	status int
	body   string
}

// fakeStation answers "METHOD /path" with a canned reply and records every call.
type fakeStation struct {
	sync.Mutex
	server  *httptest.Server
	replies map[string]reply
	calls   []call
}

func newFakeStation(t *testing.T) (*fakeStation, *station.Client) {
	f := &fakeStation{replies: make(map[string]reply)}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)

	client, err := station.NewClient(station.Config{BaseURL: f.server.URL})
	require.NoError(t, err)
	return f, client
}

func (f *fakeStation) on(method, path string, status int, body string) {
	f.Lock()
	defer f.Unlock()
	f.replies[method+" "+path] = reply{status: status, body: body}
}

func (f *fakeStation) serve(w http.ResponseWriter, r *http.Request) {
	f.Lock()
	defer f.Unlock()

	c := call{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery}
	if data, _ := ioutil.ReadAll(r.Body); len(data) > 0 {
		_ = json.Unmarshal(data, &c.Body)
	}
	f.calls = append(f.calls, c)

	rep, ok := f.replies[r.Method+" "+r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "no route"}`))
		return
	}
	w.WriteHeader(rep.status)
	_, _ = w.Write([]byte(rep.body))
}

func (f *fakeStation) recorded() []call {
	f.Lock()
	defer f.Unlock()
	return append([]call(nil), f.calls...)
}
