package backup

import (
	"fmt"
	"net/http"
	"reflect"
	"testing"

	"github.com/rflorenc/foreman-backup/internal/foreman"
	"github.com/rflorenc/foreman-backup/internal/models"
)

// fakeClient implements ResourceClient with pluggable behavior.
type fakeClient struct {
	list func(apiPath string) ([]models.Resource, error)
	get  func(apiPath string, id int) (models.Resource, error)
}

func (f *fakeClient) ListResources(apiPath string) ([]models.Resource, error) {
	return f.list(apiPath)
}

func (f *fakeClient) GetResource(apiPath string, id int) (models.Resource, error) {
	return f.get(apiPath, id)
}

var archType = models.ResourceType{Name: "architectures", APIPath: "/api/architectures"}

func TestDereference_PassThroughWithoutID(t *testing.T) {
	client := &fakeClient{
		get: func(apiPath string, id int) (models.Resource, error) {
			t.Fatal("GetResource called for summary without id")
			return nil, nil
		},
	}

	summary := models.Resource{"name": "x86_64"}
	got, err := dereference(client, archType, summary)
	if err != nil {
		t.Fatalf("dereference: %v", err)
	}
	if !reflect.DeepEqual(got, summary) {
		t.Errorf("dereference = %v, want summary unchanged", got)
	}
}

func TestDereference_Fetches(t *testing.T) {
	full := models.Resource{"id": float64(7), "name": "x86_64", "hosts_count": float64(12)}
	client := &fakeClient{
		get: func(apiPath string, id int) (models.Resource, error) {
			if apiPath != "/api/architectures" || id != 7 {
				t.Errorf("GetResource(%s, %d), want (/api/architectures, 7)", apiPath, id)
			}
			return full, nil
		},
	}

	got, err := dereference(client, archType, models.Resource{"id": float64(7), "name": "x86_64"})
	if err != nil {
		t.Fatalf("dereference: %v", err)
	}
	if !reflect.DeepEqual(got, full) {
		t.Errorf("dereference = %v, want full record", got)
	}
}

func TestDereference_NotFoundFallsBackToSummary(t *testing.T) {
	client := &fakeClient{
		get: func(apiPath string, id int) (models.Resource, error) {
			return nil, &foreman.APIError{StatusCode: http.StatusNotFound, Path: fmt.Sprintf("%s/%d", apiPath, id)}
		},
	}

	summary := models.Resource{"id": float64(7), "name": "x"}
	got, err := dereference(client, archType, summary)
	if err != nil {
		t.Fatalf("dereference: %v", err)
	}
	if !reflect.DeepEqual(got, models.Resource{"id": float64(7), "name": "x"}) {
		t.Errorf("dereference = %v, want summary unchanged", got)
	}
}

func TestDereference_OtherErrorsAreFatal(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"server error", &foreman.APIError{StatusCode: http.StatusInternalServerError, Path: "/api/architectures/7"}},
		{"unauthorized", &foreman.APIError{StatusCode: http.StatusUnauthorized, Path: "/api/architectures/7"}},
		{"transport error", fmt.Errorf("connection refused")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := &fakeClient{
				get: func(apiPath string, id int) (models.Resource, error) {
					return nil, tc.err
				},
			}
			if _, err := dereference(client, archType, models.Resource{"id": float64(7)}); err == nil {
				t.Error("dereference should propagate the error")
			}
		})
	}
}
