package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/pllus/videotube/internal/logger"
	"github.com/pllus/videotube/internal/services"
	"github.com/pllus/videotube/internal/testutil"
	"github.com/pllus/videotube/utils"
)

const testSecret = "routes-secret"

type env struct {
	app      *fiber.App
	comments *testutil.Comments
	video    bson.ObjectID
	user     bson.ObjectID
	token    string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	video := bson.NewObjectID()
	videos := testutil.NewVideos(video)
	comments := &testutil.Comments{}

	app := NewApp(Deps{
		Comments:  &services.CommentService{Store: comments},
		Playlists: &services.PlaylistService{Playlists: testutil.NewPlaylists(), Videos: videos},
		Auth: &services.AuthService{
			Users:  &testutil.Users{},
			Secret: []byte(testSecret),
			TTL:    time.Hour,
		},
		Videos:         videos,
		JWTSecret:      testSecret,
		RequestTimeout: 2 * time.Second,
		CORSOrigins:    "*",
	})

	user := bson.NewObjectID()
	return &env{app: app, comments: comments, video: video, user: user, token: tokenFor(t, user)}
}

func tokenFor(t *testing.T, uid bson.ObjectID) string {
	t.Helper()
	tok, err := utils.GenerateToken(uid.Hex(), []byte(testSecret), time.Hour, time.Now())
	require.NoError(t, err)
	return tok
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
	Errors     []string        `json:"errors"`
}

func (e *env) do(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		rdr = bytes.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	assert.Equal(t, resp.StatusCode, env.StatusCode, "status line and envelope disagree")
	return resp.StatusCode, env
}

func (e *env) commentsPath() string {
	return "/api/v1/comments/" + e.video.Hex()
}

func contents(t *testing.T, data json.RawMessage) []string {
	t.Helper()
	var docs []map[string]any
	require.NoError(t, json.Unmarshal(data, &docs))
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		assert.Len(t, d, 1, "listing projects content only")
		out = append(out, d["content"].(string))
	}
	return out
}

func TestAddCommentThenList(t *testing.T) {
	e := newEnv(t)

	status, body := e.do(t, http.MethodPost, e.commentsPath(), e.token, map[string]string{"content": "nice video"})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"Commented":true}`, string(body.Data))
	assert.Equal(t, "Commented successfully", body.Message)
	assert.True(t, body.Success)

	status, body = e.do(t, http.MethodGet, e.commentsPath()+"?page=1&limit=10", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "All comments fetched successfully", body.Message)
	assert.Equal(t, []string{"nice video"}, contents(t, body.Data))
}

func TestListPagination(t *testing.T) {
	e := newEnv(t)
	for _, c := range []string{"1", "2", "3", "4", "5"} {
		status, _ := e.do(t, http.MethodPost, e.commentsPath(), e.token, map[string]string{"content": "c" + c})
		require.Equal(t, http.StatusOK, status)
	}

	_, body := e.do(t, http.MethodGet, e.commentsPath()+"?page=1&limit=2", "", nil)
	assert.Equal(t, []string{"c1", "c2"}, contents(t, body.Data))

	_, body = e.do(t, http.MethodGet, e.commentsPath()+"?page=3&limit=2", "", nil)
	assert.Equal(t, []string{"c5"}, contents(t, body.Data))
}

func TestListRequiresPageAndLimit(t *testing.T) {
	e := newEnv(t)

	status, body := e.do(t, http.MethodGet, e.commentsPath()+"?page=1", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, utils.MsgFieldsRequired, body.Message)
	assert.False(t, body.Success)
	assert.Equal(t, "null", string(body.Data))
}

func TestListPageOutOfRange(t *testing.T) {
	e := newEnv(t)
	e.do(t, http.MethodPost, e.commentsPath(), e.token, map[string]string{"content": "only one"})

	status, body := e.do(t, http.MethodGet, e.commentsPath()+"?page=100000000000000001&limit=100", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "page is out of range", body.Message)
}

func TestEmptyBodyReportsMissingFields(t *testing.T) {
	e := newEnv(t)

	for _, method := range []string{http.MethodPost, http.MethodPatch, http.MethodDelete} {
		t.Run("comments "+method, func(t *testing.T) {
			status, body := e.do(t, method, e.commentsPath(), e.token, nil)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, utils.MsgFieldsRequired, body.Message)
		})
	}

	status, body := e.do(t, http.MethodPost, "/api/v1/playlist/create-playlist", e.token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, utils.MsgFieldsRequired, body.Message)

	status, body = e.do(t, http.MethodPost, "/api/v1/users/login", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, utils.MsgFieldsRequired, body.Message)

	status, body = e.do(t, http.MethodPost, e.commentsPath(), e.token, []byte(`{"content":`))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid request body", body.Message)
	assert.Empty(t, e.comments.All())
}

func TestPanicIsLoggedAs500(t *testing.T) {
	e := newEnv(t)
	e.app.Get("/boom", func(c *fiber.Ctx) error { panic("kaboom") })

	var buf bytes.Buffer
	logger.Log.SetOutput(&buf)
	t.Cleanup(func() { logger.Log.SetOutput(os.Stdout) })

	status, body := e.do(t, http.MethodGet, "/boom", "", nil)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Something went wrong", body.Message)

	var logged bool
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		if json.Unmarshal([]byte(line), &entry) != nil {
			continue
		}
		if entry["msg"] == "request" && entry["path"] == "/boom" {
			logged = true
			assert.Equal(t, float64(http.StatusInternalServerError), entry["status"])
			assert.Equal(t, "error", entry["level"])
		}
	}
	assert.True(t, logged, "no request line for the panicking route:\n%s", buf.String())
}

func TestUpdateComment(t *testing.T) {
	e := newEnv(t)
	e.do(t, http.MethodPost, e.commentsPath(), e.token, map[string]string{"content": "old"})

	status, body := e.do(t, http.MethodPatch, e.commentsPath(), e.token, map[string]string{"oldContent": "nope", "content": "new"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, services.MsgCommentNotFound, body.Message)
	assert.Equal(t, "old", e.comments.All()[0].Content)

	status, body = e.do(t, http.MethodPatch, e.commentsPath(), e.token, map[string]string{"oldContent": "old", "content": "new"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Comment updated", body.Message)

	var updated struct {
		ID      string `json:"_id"`
		Content string `json:"content"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &updated))
	assert.Equal(t, "new", updated.Content)
	assert.Equal(t, e.comments.All()[0].ID.Hex(), updated.ID)
}

func TestDeleteComment(t *testing.T) {
	e := newEnv(t)
	e.do(t, http.MethodPost, e.commentsPath(), e.token, map[string]string{"content": "bye"})

	status, body := e.do(t, http.MethodDelete, e.commentsPath(), e.token, map[string]string{"content": ""})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, utils.MsgFieldsRequired, body.Message)

	// someone else's comment is not theirs to delete
	status, _ = e.do(t, http.MethodDelete, e.commentsPath(), tokenFor(t, bson.NewObjectID()), map[string]string{"content": "bye"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = e.do(t, http.MethodDelete, e.commentsPath(), e.token, map[string]string{"content": "bye"})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"Deleted":true}`, string(body.Data))
	assert.Empty(t, e.comments.All())
}

func TestEmptyContentRejectedOnAdd(t *testing.T) {
	e := newEnv(t)

	status, body := e.do(t, http.MethodPost, e.commentsPath(), e.token, map[string]string{"content": ""})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, utils.MsgFieldsRequired, body.Message)
	assert.Empty(t, e.comments.All())
}

func TestMissingOrUnknownVideo(t *testing.T) {
	e := newEnv(t)

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			status, body := e.do(t, method, "/api/v1/comments/", e.token, map[string]string{"content": "x", "oldContent": "y"})
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, utils.MsgFieldsRequired, body.Message)

			status, body = e.do(t, method, "/api/v1/comments/"+bson.NewObjectID().Hex(), e.token, map[string]string{"content": "x", "oldContent": "y"})
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, "Video not found", body.Message)
		})
	}
	assert.Empty(t, e.comments.All())
}

func TestCommentMutationsNeedAuth(t *testing.T) {
	e := newEnv(t)

	status, body := e.do(t, http.MethodPost, e.commentsPath(), "", map[string]string{"content": "anon"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, body.Success)

	status, _ = e.do(t, http.MethodPost, e.commentsPath(), "bad-token", map[string]string{"content": "anon"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Empty(t, e.comments.All())
}

func TestStoreFailureIs500(t *testing.T) {
	e := newEnv(t)
	e.comments.Fail = true

	status, body := e.do(t, http.MethodGet, e.commentsPath()+"?page=1&limit=10", "", nil)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Something went wrong", body.Message)
}

func TestPlaylistFlow(t *testing.T) {
	e := newEnv(t)

	status, body := e.do(t, http.MethodPost, "/api/v1/playlist/create-playlist", e.token, map[string]string{"name": "Faves", "description": "the best"})
	require.Equal(t, http.StatusOK, status)
	var created struct {
		ID     string   `json:"_id"`
		Videos []string `json:"videos"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &created))
	assert.Empty(t, created.Videos)

	addPath := "/api/v1/playlist/add-video-to-playlist/" + created.ID + "/" + e.video.Hex()
	for i := 0; i < 2; i++ {
		status, body = e.do(t, http.MethodPatch, addPath, e.token, nil)
		require.Equal(t, http.StatusOK, status)
	}
	var withVideo struct {
		Videos []string `json:"videos"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &withVideo))
	assert.Equal(t, []string{e.video.Hex()}, withVideo.Videos)

	status, body = e.do(t, http.MethodGet, "/api/v1/playlist/get-all-playlists", e.token, nil)
	require.Equal(t, http.StatusOK, status)
	var mine []map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &mine))
	assert.Len(t, mine, 1)

	status, _ = e.do(t, http.MethodGet, "/api/v1/playlist/get-playlist/"+created.ID, e.token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, body = e.do(t, http.MethodPatch, "/api/v1/playlist/update-playlist/"+created.ID, e.token, map[string]string{"name": "Renamed"})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body.Data), `"name":"Renamed"`)

	status, _ = e.do(t, http.MethodPatch, "/api/v1/playlist/remove-video-from-playlist/"+created.ID+"/"+e.video.Hex(), e.token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = e.do(t, http.MethodDelete, "/api/v1/playlist/delete-playlist/"+created.ID, e.token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, body = e.do(t, http.MethodGet, "/api/v1/playlist/get-playlist/"+created.ID, e.token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, services.MsgPlaylistNotFound, body.Message)
}

func TestPlaylistErrors(t *testing.T) {
	e := newEnv(t)

	status, _ := e.do(t, http.MethodGet, "/api/v1/playlist/get-all-playlists", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := e.do(t, http.MethodGet, "/api/v1/playlist/get-playlist/not-hex", e.token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid playlist id", body.Message)

	status, body = e.do(t, http.MethodPost, "/api/v1/playlist/create-playlist", e.token, map[string]string{"name": "only name"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, utils.MsgFieldsRequired, body.Message)

	_, body = e.do(t, http.MethodPost, "/api/v1/playlist/create-playlist", e.token, map[string]string{"name": "n", "description": "d"})
	var created struct {
		ID string `json:"_id"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &created))

	status, body = e.do(t, http.MethodPatch, "/api/v1/playlist/add-video-to-playlist/"+created.ID+"/"+bson.NewObjectID().Hex(), e.token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, services.MsgVideoNotFound, body.Message)

	other := tokenFor(t, bson.NewObjectID())
	status, body = e.do(t, http.MethodPatch, "/api/v1/playlist/add-video-to-playlist/"+created.ID+"/"+e.video.Hex(), other, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, services.MsgPlaylistNotFound, body.Message)
}

func TestRegisterLoginThenComment(t *testing.T) {
	e := newEnv(t)

	status, _ := e.do(t, http.MethodPost, "/api/v1/users/register", "", map[string]string{
		"username": "alice", "email": "alice@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, status)

	status, _ = e.do(t, http.MethodPost, "/api/v1/users/register", "", map[string]string{
		"username": "alice", "email": "alice@example.com", "password": "hunter22",
	})
	assert.Equal(t, http.StatusConflict, status)

	status, body := e.do(t, http.MethodPost, "/api/v1/users/login", "", map[string]string{
		"email": "alice@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, status)
	var login struct {
		AccessToken string         `json:"accessToken"`
		User        map[string]any `json:"user"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &login))
	assert.NotContains(t, login.User, "password")

	status, _ = e.do(t, http.MethodPost, e.commentsPath(), login.AccessToken, map[string]string{"content": "from alice"})
	assert.Equal(t, http.StatusOK, status)
}

func TestHealthz(t *testing.T) {
	e := newEnv(t)

	resp, err := e.app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
