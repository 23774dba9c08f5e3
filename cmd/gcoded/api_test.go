package main

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(newAPI(t.TempDir()))
	t.Cleanup(srv.Close)
	return srv
}

func TestAPI_Parse(t *testing.T) {
	srv := newTestAPI(t)

	resp, err := http.Post(srv.URL+"/api/parse", "text/plain", strings.NewReader("N1 G1 X10*80\nG1 X1"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	var body struct {
		Lines []struct {
			Words []struct {
				Letter string `json:"letter"`
				Value  string `json:"value"`
			} `json:"words"`
		} `json:"lines"`
		Checksums []struct {
			Line     int  `json:"line"`
			Declared byte `json:"declared"`
			OK       bool `json:"ok"`
		} `json:"checksums"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Lines, 2)
	assert.Equal(t, "N", body.Lines[0].Words[0].Letter)
	assert.Equal(t, "10", body.Lines[0].Words[2].Value)
	require.Len(t, body.Checksums, 1)
	assert.Equal(t, 1, body.Checksums[0].Line)
	assert.True(t, body.Checksums[0].OK)
}

func TestAPI_ParseError(t *testing.T) {
	srv := newTestAPI(t)

	resp, err := http.Post(srv.URL+"/api/parse", "text/plain", strings.NewReader("G1 X"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 400, resp.StatusCode)

	var body struct {
		Line int    `json:"line"`
		Col  int    `json:"col"`
		Kind string `json:"kind"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Line)
	assert.Equal(t, 3, body.Col)
	assert.Equal(t, "invalid word", body.Kind)
}

func TestAPI_Format(t *testing.T) {
	srv := newTestAPI(t)

	resp, err := http.Post(srv.URL+"/api/format?lineNumbers=1&checksums=1&start=1", "text/plain",
		strings.NewReader("G1 X1\ng1x2\n"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	data, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "N1 G1 X1*96\nN2 G1 X2*96\n", string(data))
}

func TestAPI_Files(t *testing.T) {
	srv := newTestAPI(t)

	req, err := http.NewRequest("PUT", srv.URL+"/data/part.gcode", strings.NewReader("G28\n"))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/data/part.gcode")
	require.NoError(t, err)
	data, err := ioutil.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "G28\n", string(data))

	req, err = http.NewRequest("DELETE", srv.URL+"/data/part.gcode", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/data/part.gcode")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, 404, resp.StatusCode)
}
