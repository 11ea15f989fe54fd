package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/uniregistry/internal/config"
)

type envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Pagination *struct {
		CurrentPage int `json:"currentPage"`
		TotalPages  int `json:"totalPages"`
		TotalItems  int `json:"totalItems"`
	} `json:"pagination"`
	Error *struct {
		Code    string `json:"code"`
		Details any    `json:"details"`
	} `json:"error"`
}

func testConfig(seedDemo bool) *config.Config {
	cfg := &config.Config{}
	cfg.Server.Port = "0"
	cfg.Server.Mode = "test"
	cfg.Registry.RollNumberSeed = 5
	cfg.Registry.SeedDemoData = seedDemo
	return cfg
}

func newRouter(t *testing.T, seedDemo bool) *gin.Engine {
	t.Helper()
	cfg := testConfig(seedDemo)
	deps, err := BuildDependencies(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	return SetupRouter(cfg, deps, zerolog.Nop())
}

func call(t *testing.T, router *gin.Engine, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec.Code, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

type searchResult[T any] struct {
	Query   string `json:"query"`
	Found   bool   `json:"found"`
	Results []T    `json:"results"`
}

func TestDepartmentLifecycle(t *testing.T) {
	router := newRouter(t, false)

	status, _ := call(t, router, http.MethodPost, "/api/v1/departments", gin.H{"name": "CS"})
	require.Equal(t, http.StatusCreated, status)

	status, env := call(t, router, http.MethodPost, "/api/v1/departments", gin.H{"name": "CS"})
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "RES_002", env.Error.Code)
	assert.Equal(t, map[string]any{"department": "CS"}, env.Error.Details)

	status, env = call(t, router, http.MethodPost, "/api/v1/departments", gin.H{"name": "   "})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VAL_001", env.Error.Code)

	status, env = call(t, router, http.MethodGet, "/api/v1/departments", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]map[string]any](t, env.Data), 1)

	status, env = call(t, router, http.MethodGet, "/api/v1/departments/Math", nil)
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "RES_001", env.Error.Code)
}

func TestCourseOfferedByDepartment(t *testing.T) {
	router := newRouter(t, false)
	call(t, router, http.MethodPost, "/api/v1/departments", gin.H{"name": "CS"})

	status, _ := call(t, router, http.MethodPost, "/api/v1/courses", gin.H{
		"name": "Algorithms", "code": "CS101", "departmentName": "CS",
	})
	require.Equal(t, http.StatusCreated, status)

	status, env := call(t, router, http.MethodGet, "/api/v1/departments/CS/courses", nil)
	require.Equal(t, http.StatusOK, status)
	courses := decode[[]struct {
		Name string `json:"name"`
		Code string `json:"code"`
	}](t, env.Data)
	require.Len(t, courses, 1)
	assert.Equal(t, "CS101", courses[0].Code)

	status, _ = call(t, router, http.MethodPost, "/api/v1/courses", gin.H{
		"name": "Calculus", "code": "M101", "departmentName": "Math",
	})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestStudentEnrollmentAndSearch(t *testing.T) {
	router := newRouter(t, false)
	call(t, router, http.MethodPost, "/api/v1/departments", gin.H{"name": "CS"})

	status, _ := call(t, router, http.MethodPost, "/api/v1/students", gin.H{
		"name": "Ada", "age": 20, "departmentName": "Math",
	})
	require.Equal(t, http.StatusNotFound, status)
	_, env := call(t, router, http.MethodGet, "/api/v1/students", nil)
	assert.Empty(t, decode[[]map[string]any](t, env.Data))

	status, env = call(t, router, http.MethodPost, "/api/v1/students", gin.H{
		"name": "Ada Lovelace", "age": 20, "departmentName": "CS",
		"subjects": []string{"Algorithms"}, "feesPaid": true, "attendance": 95,
	})
	require.Equal(t, http.StatusCreated, status)
	student := decode[struct {
		RollNumber string `json:"rollNumber"`
		Department string `json:"department"`
	}](t, env.Data)
	assert.Regexp(t, `^S-\d{4}$`, student.RollNumber)
	assert.Equal(t, "CS", student.Department)

	status, env = call(t, router, http.MethodGet, "/api/v1/search/students?q="+student.RollNumber, nil)
	require.Equal(t, http.StatusOK, status)
	found := decode[searchResult[map[string]any]](t, env.Data)
	assert.True(t, found.Found)
	require.Len(t, found.Results, 1)
	assert.Equal(t, "Ada Lovelace", found.Results[0]["name"])

	status, _ = call(t, router, http.MethodPost, "/api/v1/students", gin.H{
		"name": "Young", "age": 12, "departmentName": "CS",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestInstructorSearch(t *testing.T) {
	router := newRouter(t, false)
	call(t, router, http.MethodPost, "/api/v1/departments", gin.H{"name": "CS"})

	status, env := call(t, router, http.MethodPost, "/api/v1/instructors", gin.H{
		"name": "Grace", "subject": "Physics", "salary": 5000, "departmentName": "CS",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.EqualValues(t, 30, decode[map[string]any](t, env.Data)["age"])

	_, env = call(t, router, http.MethodGet, "/api/v1/search/instructors?q=phys", nil)
	found := decode[searchResult[map[string]any]](t, env.Data)
	require.True(t, found.Found)
	assert.Equal(t, "Grace", found.Results[0]["name"])
	assert.Equal(t, "CS", found.Results[0]["department"])

	_, env = call(t, router, http.MethodGet, "/api/v1/search/instructors?q=nonexistent", nil)
	found = decode[searchResult[map[string]any]](t, env.Data)
	assert.False(t, found.Found)
	assert.Empty(t, found.Results)
}

func TestClassLedger(t *testing.T) {
	router := newRouter(t, false)

	status, env := call(t, router, http.MethodPost, "/api/v1/classes", gin.H{
		"name": "Intro Lab", "department": "Nowhere", "instructor": "Nobody", "time": "Mon 10:00",
	})
	require.Equal(t, http.StatusCreated, status)
	class := decode[map[string]any](t, env.Data)
	assert.NotEmpty(t, class["id"])
	assert.Equal(t, "Mon 10:00", class["time"])

	_, env = call(t, router, http.MethodGet, "/api/v1/classes/search?q=intro", nil)
	assert.True(t, decode[searchResult[map[string]any]](t, env.Data).Found)

	_, env = call(t, router, http.MethodGet, "/api/v1/departments", nil)
	assert.Empty(t, decode[[]map[string]any](t, env.Data))
}

func TestSeededDataAndPagination(t *testing.T) {
	router := newRouter(t, true)

	status, env := call(t, router, http.MethodGet, "/api/v1/departments?page=2&size=1", nil)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 2, env.Pagination.CurrentPage)
	assert.Equal(t, 2, env.Pagination.TotalPages)
	assert.Equal(t, 2, env.Pagination.TotalItems)
	depts := decode[[]map[string]any](t, env.Data)
	require.Len(t, depts, 1)
	assert.Equal(t, "Electrical Engineering", depts[0]["name"])

	_, env = call(t, router, http.MethodGet, "/api/v1/departments", nil)
	assert.Nil(t, env.Pagination)
}

func TestOperationalRoutes(t *testing.T) {
	router := newRouter(t, false)

	for _, path := range []string{"/ping", "/api/v1/health", "/swagger/doc.json"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestBlankDepartmentNameIsNotFound(t *testing.T) {
	router := newRouter(t, false)
	call(t, router, http.MethodPost, "/api/v1/departments", gin.H{"name": "CS"})

	requests := []struct {
		path string
		body gin.H
	}{
		{"/api/v1/instructors", gin.H{"name": "Grace", "subject": "Physics", "departmentName": "  "}},
		{"/api/v1/courses", gin.H{"name": "Algorithms", "code": "CS101", "departmentName": ""}},
		{"/api/v1/students", gin.H{"name": "Ada", "age": 20}},
	}
	for _, r := range requests {
		status, env := call(t, router, http.MethodPost, r.path, r.body)
		require.Equal(t, http.StatusNotFound, status, r.path)
		assert.Equal(t, "RES_001", env.Error.Code, r.path)
	}
}
