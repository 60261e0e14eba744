package client

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-blog-api/internal/adapter"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/mock"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testBlogID = "0192f5e4-8a11-7b22-8c33-9d44e55f6a77"

func newTestApp(t *testing.T) (*App, *mock.MockBlogAPI, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock.NewMockBlogAPI(ctrl)
	out := &bytes.Buffer{}
	return NewApp(api, out, logger.Nop()), api, out
}

func TestRun_NoCommand(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), nil)

	require.ErrorIs(t, err, ErrNoCommand)
	assert.Contains(t, err.Error(), "commands:")
}

func TestRun_UnknownCommand(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"publish"})

	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), `"publish"`)
}

func TestRun_Version(t *testing.T) {
	app, api, out := newTestApp(t)
	api.EXPECT().Version(gomock.Any()).Return("1.2.3", nil)

	require.NoError(t, app.Run(context.Background(), []string{"version"}))
	assert.Equal(t, "1.2.3\n", out.String())
}

func TestRun_Register(t *testing.T) {
	app, api, out := newTestApp(t)
	api.EXPECT().
		Register(gomock.Any(), models.RegisterRequest{Username: "alice", Email: "a@x", Password: "pw"}).
		Return(models.UserResponse{ID: "u1", Username: "alice", Email: "a@x", Token: "jwt"}, nil)

	err := app.Run(context.Background(), []string{"register", "-username", "alice", "-email", "a@x", "-password", "pw"})

	require.NoError(t, err)
	var got models.UserResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "jwt", got.Token)
}

func TestRun_Login_PropagatesError(t *testing.T) {
	app, api, out := newTestApp(t)
	api.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "a@x", Password: "bad"}).
		Return(models.UserResponse{}, adapter.ErrUnauthorized)

	err := app.Run(context.Background(), []string{"login", "-email", "a@x", "-password", "bad"})

	require.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Empty(t, out.String())
}

func TestRun_BadFlag(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"login", "-nope"})

	require.Error(t, err)
}

func TestRun_List(t *testing.T) {
	app, api, out := newTestApp(t)
	api.EXPECT().ListBlogs(gomock.Any()).Return([]models.Blog{{ID: testBlogID, Title: "T"}}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"list"}))

	var got []models.Blog
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, testBlogID, got[0].ID)
}

func TestRun_GetRequiresID(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"get"})

	require.ErrorIs(t, err, ErrMissingArgument)
}

func TestRun_Update(t *testing.T) {
	app, api, _ := newTestApp(t)
	req := models.BlogRequest{Title: "New", Content: "Body"}
	api.EXPECT().UpdateBlog(gomock.Any(), testBlogID, req).Return(models.Blog{ID: testBlogID, Title: "New"}, nil)

	err := app.Run(context.Background(), []string{"update", "-title", "New", "-content", "Body", testBlogID})

	require.NoError(t, err)
}

func TestRun_Delete(t *testing.T) {
	app, api, out := newTestApp(t)
	api.EXPECT().DeleteBlog(gomock.Any(), testBlogID).Return("Blog removed", nil)

	require.NoError(t, app.Run(context.Background(), []string{"delete", testBlogID}))

	var got models.MessageResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "Blog removed", got.Message)
}

func TestUsage_ListsCommandsSorted(t *testing.T) {
	app, _, _ := newTestApp(t)

	usage := app.Usage()

	assert.Less(t, bytes.Index([]byte(usage), []byte("create")), bytes.Index([]byte(usage), []byte("version")))
	assert.Contains(t, usage, "update -title TITLE -content CONTENT ID")
}
