package router

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/slateworks/postparse/internal/config"
	"github.com/slateworks/postparse/internal/handler"
	"github.com/slateworks/postparse/internal/middleware"
	"github.com/slateworks/postparse/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "development"},
		Server: config.ServerConfig{
			Port:               "8080",
			ReadTimeout:        10,
			WriteTimeout:       10,
			IdleTimeout:        30,
			CORSAllowedOrigins: []string{"*"},
		},
		Logging: config.LogConfig{Level: "info"},
	}

	log := zerolog.Nop()
	srv := server.New(cfg, &log)

	return New(handler.NewHandlers(srv), middleware.NewMiddlewares(cfg, log))
}

func doRequest(t *testing.T, e *echo.Echo, method, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestJSONEndpoint_Valid(t *testing.T) {
	e := newTestRouter(t)

	body := `{"name":"John Doe","email":"john@example.com","age":30}`
	rec := doRequest(t, e, http.MethodPost, "/api/json/", "application/json", strings.NewReader(body))

	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, "application/json", resp["content_type"])

	received := resp["received"].(map[string]interface{})
	assert.Equal(t, "John Doe", received["name"])
	assert.Equal(t, "john@example.com", received["email"])
	assert.Equal(t, float64(30), received["age"])
}

func TestJSONEndpoint_MalformedBody(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, http.MethodPost, "/api/json/", "application/json", strings.NewReader("{not json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeBody(t, rec)
	assert.Equal(t, "error", resp["status"])
	assert.Equal(t, "Invalid JSON", resp["error"])
	assert.Equal(t, "application/json", resp["content_type"])
	assert.NotContains(t, resp, "errors")
}

func TestJSONEndpoint_SchemaViolations(t *testing.T) {
	e := newTestRouter(t)

	body := `{"name":"J","email":"nope","age":200}`
	rec := doRequest(t, e, http.MethodPost, "/api/json/", "application/json", strings.NewReader(body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeBody(t, rec)
	assert.Equal(t, "error", resp["status"])

	fieldErrors := resp["errors"].(map[string]interface{})
	assert.Contains(t, fieldErrors, "name")
	assert.Contains(t, fieldErrors, "email")
	assert.Contains(t, fieldErrors, "age")
}

func TestJSONEndpoint_WrongFieldType(t *testing.T) {
	e := newTestRouter(t)

	body := `{"name":"John Doe","email":"john@example.com","age":"thirty"}`
	rec := doRequest(t, e, http.MethodPost, "/api/json/", "application/json", strings.NewReader(body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeBody(t, rec)
	fieldErrors := resp["errors"].(map[string]interface{})
	messages := fieldErrors["age"].([]interface{})
	assert.Equal(t, "Age must be an integer", messages[0])
}

func TestURLEncodedEndpoint_Valid(t *testing.T) {
	e := newTestRouter(t)

	form := url.Values{
		"username": {"john_doe"},
		"email":    {"john@example.com"},
		"password": {"Abcdefgh"},
	}
	rec := doRequest(t, e, http.MethodPost, "/api/urlencoded/",
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()))

	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, "application/x-www-form-urlencoded", resp["content_type"])

	received := resp["received"].(map[string]interface{})
	assert.Equal(t, []interface{}{"john_doe"}, received["username"])
}

func TestURLEncodedEndpoint_LowercasePassword(t *testing.T) {
	e := newTestRouter(t)

	form := url.Values{
		"username": {"john_doe"},
		"email":    {"john@example.com"},
		"password": {"password"},
	}
	rec := doRequest(t, e, http.MethodPost, "/api/urlencoded/",
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeBody(t, rec)
	fieldErrors := resp["errors"].(map[string]interface{})
	messages := fieldErrors["password"].([]interface{})
	assert.Equal(t, "Password must contain both uppercase and lowercase letters", messages[0])
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName, fileType string, fileContent []byte) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}

	if fileField != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition",
			`form-data; name="`+fileField+`"; filename="`+fileName+`"`)
		header.Set("Content-Type", fileType)

		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestMultipartEndpoint_Valid(t *testing.T) {
	e := newTestRouter(t)

	body, contentType := multipartBody(t,
		map[string]string{"username": "john_doe", "email": "john@example.com"},
		"avatar", "me.png", "image/png", []byte("fake png bytes"))
	rec := doRequest(t, e, http.MethodPost, "/api/multipart/", contentType, body)

	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, "multipart/form-data", resp["content_type"])

	formData := resp["form_data"].(map[string]interface{})
	assert.Equal(t, []interface{}{"john_doe"}, formData["username"])

	files := resp["files"].(map[string]interface{})
	avatar := files["avatar"].(map[string]interface{})
	assert.Equal(t, "me.png", avatar["name"])
	assert.Equal(t, float64(len("fake png bytes")), avatar["size"])
	assert.Equal(t, "image/png", avatar["content_type"])
}

func TestMultipartEndpoint_WrongAvatarType(t *testing.T) {
	e := newTestRouter(t)

	body, contentType := multipartBody(t,
		map[string]string{"username": "john_doe", "email": "john@example.com"},
		"avatar", "notes.txt", "text/plain", []byte("hi"))
	rec := doRequest(t, e, http.MethodPost, "/api/multipart/", contentType, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeBody(t, rec)
	fieldErrors := resp["errors"].(map[string]interface{})
	messages := fieldErrors["avatar"].([]interface{})
	assert.Equal(t,
		"Invalid file type. Allowed types: image/jpeg, image/png, image/gif, image/webp",
		messages[0])
}

func TestMultipartEndpoint_MissingFields(t *testing.T) {
	e := newTestRouter(t)

	body, contentType := multipartBody(t, map[string]string{}, "", "", "", nil)
	rec := doRequest(t, e, http.MethodPost, "/api/multipart/", contentType, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeBody(t, rec)
	fieldErrors := resp["errors"].(map[string]interface{})
	assert.Contains(t, fieldErrors, "username")
	assert.Contains(t, fieldErrors, "email")
}

func TestTextEndpoint(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, http.MethodPost, "/api/text/", "text/plain", strings.NewReader("héllo"))

	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, "héllo", resp["received"])
	// Length counts characters, not bytes.
	assert.Equal(t, float64(5), resp["length"])
	assert.Equal(t, "text/plain", resp["content_type"])
}

func TestTextEndpoint_InvalidUTF8(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, http.MethodPost, "/api/text/", "text/plain", bytes.NewReader([]byte{0xff, 0xfe}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeBody(t, rec)
	assert.Equal(t, "error", resp["status"])
	assert.Equal(t, "Invalid UTF-8", resp["error"])
}

func TestHTMLAndSVGEndpoints(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, http.MethodPost, "/api/html/", "text/html", strings.NewReader("<p>hi</p>"))
	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "<p>hi</p>", resp["received"])
	assert.Equal(t, "text/html", resp["content_type"])

	rec = doRequest(t, e, http.MethodPost, "/api/svg/", "image/svg+xml", strings.NewReader("<svg/>"))
	assert.Equal(t, http.StatusOK, rec.Code)
	resp = decodeBody(t, rec)
	assert.Equal(t, "<svg/>", resp["received"])
	assert.Equal(t, "image/svg+xml", resp["content_type"])
}

func TestBinaryEndpoint(t *testing.T) {
	e := newTestRouter(t)

	payload := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	rec := doRequest(t, e, http.MethodPost, "/api/binary/", "application/octet-stream", bytes.NewReader(payload))

	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	assert.Equal(t, float64(12), resp["size"])

	firstBytes := resp["first_bytes"].([]interface{})
	require.Len(t, firstBytes, 10)
	assert.Equal(t, float64(1), firstBytes[0])
	assert.Equal(t, float64(10), firstBytes[9])
}

func TestBinaryEndpoint_EmptyBody(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, http.MethodPost, "/api/binary/", "application/octet-stream", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	assert.Equal(t, float64(0), resp["size"])
	assert.Equal(t, []interface{}{}, resp["first_bytes"])
}

func TestXMLEndpoint_Valid(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, http.MethodPost, "/api/xml/", "application/xml",
		strings.NewReader("<root><a>1</a><b>2</b></root>"))

	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	assert.Equal(t, "root", resp["root_tag"])
	assert.Equal(t, map[string]interface{}{"a": "1", "b": "2"}, resp["data"])
	assert.Equal(t, "application/xml", resp["content_type"])
}

func TestXMLEndpoint_Malformed(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, http.MethodPost, "/api/xml/", "application/xml", strings.NewReader("<root><a>"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeBody(t, rec)
	assert.Equal(t, "Invalid XML", resp["error"])
}

func TestNDJSONEndpoint_Valid(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, http.MethodPost, "/api/ndjson/", "application/x-ndjson",
		strings.NewReader("{\"a\":1}\n{\"b\":2}\n"))

	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	assert.Equal(t, float64(2), resp["lines_count"])

	data := resp["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, map[string]interface{}{"a": float64(1)}, data[0])
	assert.Equal(t, map[string]interface{}{"b": float64(2)}, data[1])
}

func TestNDJSONEndpoint_BadLine(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, http.MethodPost, "/api/ndjson/", "application/x-ndjson",
		strings.NewReader("{\"a\":1}\nnot-json\n"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// The whole batch fails; no partial results leak out.
	resp := decodeBody(t, rec)
	assert.Equal(t, "Invalid NDJSON", resp["error"])
	assert.NotContains(t, resp, "data")
}

func TestNDJSONEndpoint_EmptyBody(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, http.MethodPost, "/api/ndjson/", "application/x-ndjson", strings.NewReader(""))

	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	assert.Equal(t, float64(0), resp["lines_count"])
	assert.Equal(t, []interface{}{}, resp["data"])
}

func TestIndexPage(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, http.MethodGet, "/", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/json/")

	cookies := rec.Result().Cookies()
	var found bool
	for _, cookie := range cookies {
		if cookie.Name == "csrftoken" {
			found = true
		}
	}
	assert.True(t, found, "expected csrftoken cookie on the landing page")
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, http.MethodGet, "/status", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "development", resp["environment"])
}

func TestUnknownRoute(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, http.MethodGet, "/nope", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeBody(t, rec)
	assert.Equal(t, "error", resp["status"])
	assert.Equal(t, "Route not found", resp["error"])
}

func TestAPIRoutesArePostOnly(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, http.MethodGet, "/api/json/", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
