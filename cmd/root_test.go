package cmd

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/tanq16/pullr/internal/utils"
)

func executeRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(t.Context())
	return out.String(), err
}

func TestRoot_InvalidTypeSendsNothing(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	_, err := executeRoot(t, "", "-u", srv.URL, "--type", "patch")
	gt.True(t, errors.Is(err, utils.ErrInvalidType))
	gt.String(t, err.Error()).Contains("invalid type")
	gt.Equal(t, hits.Load(), int32(0))
}

func TestRoot_DerivedOutput(t *testing.T) {
	t.Chdir(t.TempDir())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"name":"pullr"}`)
	}))
	defer srv.Close()

	out, err := executeRoot(t, "", "-u", srv.URL+"/file.json")
	gt.NoError(t, err)
	gt.String(t, out).Contains("100%")
	gt.String(t, out).Contains("Downloaded!")

	got, err := os.ReadFile("output.json")
	gt.NoError(t, err)
	gt.Equal(t, string(got), `{"name":"pullr"}`)
}

func TestRoot_ExplicitOutputAndHeader(t *testing.T) {
	var gotHeader, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Test")
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, "{}")
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "result.dat")
	_, err := executeRoot(t, "", "-u", srv.URL, "-t", "PUT", "-o", dest, "-H", "X-Test:1", "-v")
	gt.NoError(t, err)
	gt.Equal(t, gotHeader, "1")
	gt.Equal(t, gotMethod, http.MethodPut)

	got, err := os.ReadFile(dest)
	gt.NoError(t, err)
	gt.Equal(t, string(got), "{}")
}

func TestRoot_MalformedHeader(t *testing.T) {
	_, err := executeRoot(t, "", "-u", "https://example.com", "-H", "no-colon")
	gt.True(t, errors.Is(err, utils.ErrMalformedHeader))
}

func TestRoot_MissingURL(t *testing.T) {
	_, err := executeRoot(t, "")
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("url")
}

func TestRoot_DeclinedURLPrompt(t *testing.T) {
	out, err := executeRoot(t, "n\n", "-u", "example.com/file")
	gt.True(t, errors.Is(err, errAborted))
	gt.String(t, out).Contains("is not supported")
}

func TestConfirmURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		answer    string
		wantErr   bool
		wantAsked bool
	}{
		{"http passes", "http://example.com", "", false, false},
		{"https passes", "HTTPS://EXAMPLE.COM", "", false, false},
		{"y continues", "example.com", "y\n", false, true},
		{"yes continues", "ftp://example.com", "  YES \n", false, true},
		{"yes without newline", "example.com", "yes", false, true},
		{"no aborts", "example.com", "no\n", true, true},
		{"blank aborts", "example.com", "\n", true, true},
		{"eof aborts", "example.com", "", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := confirmURL(strings.NewReader(tt.answer), &out, tt.url)
			if tt.wantErr {
				gt.True(t, errors.Is(err, errAborted))
			} else {
				gt.NoError(t, err)
			}
			gt.Equal(t, strings.Contains(out.String(), "Do you want to continue?"), tt.wantAsked)
		})
	}
}
