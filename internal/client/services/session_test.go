package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

// ---- fakes ----

// fakeClient implements client.Client for controller tests. It records
// calls and can observe the loading indicator while a request is in flight.
type fakeClient struct {
	LoginErr    error
	RegisterErr error
	LogoutErr   error
	MeUser      *models.User
	MeErr       error

	Calls        []string
	LastLogin    models.LoginInput
	LastRegister models.RegisterInput

	duringCall func()
}

func (f *fakeClient) record(name string) {
	f.Calls = append(f.Calls, name)
	if f.duringCall != nil {
		f.duringCall()
	}
}

func (f *fakeClient) Login(_ context.Context, in models.LoginInput) error {
	f.record("login")
	f.LastLogin = in
	return f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, in models.RegisterInput) error {
	f.record("register")
	f.LastRegister = in
	return f.RegisterErr
}

func (f *fakeClient) Logout(context.Context) error {
	f.record("logout")
	return f.LogoutErr
}

func (f *fakeClient) CurrentUser(context.Context) (*models.User, error) {
	f.record("me")
	if f.MeErr != nil {
		return nil, f.MeErr
	}
	u := *f.MeUser
	return &u, nil
}

func (f *fakeClient) Close() error { return nil }

type recordingNotifier struct {
	mu  sync.Mutex
	got []Notification
}

func (r *recordingNotifier) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, n)
}

type recordingNavigator struct {
	routes []Route
}

func (r *recordingNavigator) Navigate(to Route) { r.routes = append(r.routes, to) }

type fixture struct {
	client *fakeClient
	notes  *recordingNotifier
	nav    *recordingNavigator
	ctrl   *Controller
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		client: &fakeClient{MeUser: &models.User{ID: "1", Name: "Ann", Email: "ann@example.com"}},
		notes:  &recordingNotifier{},
		nav:    &recordingNavigator{},
	}
	f.ctrl = NewController(f.client, f.notes, f.nav, nil, logging.Discard())
	return f
}

func structured(msgs ...string) error {
	e := &client.APIError{StatusCode: http.StatusBadRequest}
	e.Body.Errors = []client.FieldError{}
	for _, m := range msgs {
		e.Body.Errors = append(e.Body.Errors, client.FieldError{Message: m})
	}
	return e
}

func unstructured(status int, msg string) error {
	e := &client.APIError{StatusCode: status}
	e.Body.Message = msg
	return e
}

var validLogin = models.LoginInput{Email: "a@b.com", Password: "password1"}

var validRegister = models.RegisterInput{
	Name:            "Ann",
	Email:           "ann@example.com",
	Password:        "password1",
	PasswordConfirm: "password1",
}

// ---- login ----

func TestLogin_Success(t *testing.T) {
	f := newFixture(t)

	var loadingDuring bool
	f.client.duringCall = func() { loadingDuring = f.ctrl.Loading() }

	require.False(t, f.ctrl.Loading())
	res := f.ctrl.Login(context.Background(), validLogin)

	assert.True(t, res.OK)
	assert.Equal(t, []string{"login"}, f.client.Calls)
	assert.Equal(t, validLogin, f.client.LastLogin)
	assert.True(t, loadingDuring)
	assert.False(t, f.ctrl.Loading())
	assert.Equal(t, []Route{RouteProfile}, f.nav.routes)
	assert.Empty(t, f.notes.got)
}

func TestLogin_ShortPasswordBlockedLocally(t *testing.T) {
	f := newFixture(t)

	res := f.ctrl.Login(context.Background(), models.LoginInput{Email: "a@b.com", Password: "short"})

	assert.False(t, res.OK)
	assert.Equal(t, "Password must be more than 8 characters", res.Errors["password"])
	assert.Empty(t, f.client.Calls)
	assert.Empty(t, f.notes.got)
	assert.Empty(t, f.nav.routes)
}

func TestLogin_StructuredErrors_OneNotificationEach(t *testing.T) {
	for _, n := range []int{0, 1, 3} {
		t.Run(fmt.Sprintf("%d entries", n), func(t *testing.T) {
			f := newFixture(t)
			msgs := make([]string, n)
			for i := range msgs {
				msgs[i] = fmt.Sprintf("problem %d", i)
			}
			f.client.LoginErr = structured(msgs...)

			res := f.ctrl.Login(context.Background(), validLogin)

			assert.False(t, res.OK)
			require.Len(t, f.notes.got, n)
			for i, note := range f.notes.got {
				assert.Equal(t, LevelError, note.Level)
				assert.Equal(t, msgs[i], note.Message)
			}
			assert.Empty(t, f.nav.routes)
			assert.False(t, f.ctrl.Loading())
		})
	}
}

func TestLogin_UnstructuredError_SingleResolvedNotification(t *testing.T) {
	f := newFixture(t)
	f.client.LoginErr = unstructured(http.StatusBadRequest, "Invalid email or Password")

	f.ctrl.Login(context.Background(), validLogin)

	assert.Equal(t, []Notification{{Level: LevelError, Message: "Invalid email or Password"}}, f.notes.got)
	assert.False(t, f.ctrl.Loading())
}

func TestLogin_TransportError(t *testing.T) {
	f := newFixture(t)
	f.client.LoginErr = fmt.Errorf("%w: dial tcp: connection refused", client.ErrUnavailable)

	f.ctrl.Login(context.Background(), validLogin)

	require.Len(t, f.notes.got, 1)
	assert.Equal(t, "server unavailable: dial tcp: connection refused", f.notes.got[0].Message)
	assert.False(t, f.ctrl.Loading())
}

// ---- register ----

func TestRegister_MismatchNeverCallsAPI(t *testing.T) {
	f := newFixture(t)
	in := validRegister
	in.PasswordConfirm = "password2"

	res := f.ctrl.Register(context.Background(), in)

	assert.False(t, res.OK)
	assert.Equal(t, "Passwords do not match", res.Errors["passwordConfirm"])
	assert.NotContains(t, res.Errors, "password")
	assert.Empty(t, f.client.Calls)
}

func TestRegister_Success(t *testing.T) {
	f := newFixture(t)

	res := f.ctrl.Register(context.Background(), validRegister)

	assert.True(t, res.OK)
	assert.Equal(t, validRegister, f.client.LastRegister)
	assert.Equal(t, []Notification{{Level: LevelSuccess, Message: RegisteredMessage}}, f.notes.got)
	assert.Equal(t, []Route{RouteLogin}, f.nav.routes)
	assert.False(t, f.ctrl.Loading())
}

func TestRegister_StructuredFailure(t *testing.T) {
	f := newFixture(t)
	f.client.RegisterErr = structured("email taken", "name too short")

	res := f.ctrl.Register(context.Background(), validRegister)

	assert.False(t, res.OK)
	assert.Len(t, f.notes.got, 2)
	assert.Empty(t, f.nav.routes)
}

// ---- current user ----

func TestFetchCurrentUser_StoresUser(t *testing.T) {
	f := newFixture(t)

	res := f.ctrl.FetchCurrentUser(context.Background())

	require.True(t, res.OK)
	require.NotNil(t, f.ctrl.User())
	assert.Equal(t, "Ann", f.ctrl.User().Name)
	assert.False(t, f.ctrl.Loading())
}

func TestFetchCurrentUser_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.ctrl.FetchCurrentUser(ctx)
	first := f.ctrl.User()
	f.ctrl.FetchCurrentUser(ctx)
	second := f.ctrl.User()

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"me", "me"}, f.client.Calls)
}

func TestFetchCurrentUser_SessionLoss(t *testing.T) {
	f := newFixture(t)
	f.client.MeErr = unstructured(http.StatusUnauthorized, NotLoggedInMessage)

	res := f.ctrl.FetchCurrentUser(context.Background())

	assert.False(t, res.OK)
	assert.Nil(t, f.ctrl.User())
	assert.Equal(t, []Route{RouteLogin}, f.nav.routes)
	assert.Equal(t, []Notification{{Level: LevelError, Message: NotLoggedInMessage}}, f.notes.got)
}

func TestFetchCurrentUser_SessionLossClearsPreviousUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.ctrl.FetchCurrentUser(ctx)
	require.NotNil(t, f.ctrl.User())

	f.client.MeErr = unstructured(http.StatusUnauthorized, NotLoggedInMessage)
	f.ctrl.FetchCurrentUser(ctx)

	assert.Nil(t, f.ctrl.User())
}

func TestFetchCurrentUser_OtherErrorDoesNotRedirect(t *testing.T) {
	f := newFixture(t)
	f.client.MeErr = unstructured(http.StatusInternalServerError, "you are not logged in")

	f.ctrl.FetchCurrentUser(context.Background())

	assert.Empty(t, f.nav.routes, "match must be exact")
	assert.Len(t, f.notes.got, 1)
}

func TestFetchCurrentUser_StructuredSkipsRedirect(t *testing.T) {
	f := newFixture(t)
	f.client.MeErr = structured(NotLoggedInMessage)

	f.ctrl.FetchCurrentUser(context.Background())

	assert.Empty(t, f.nav.routes)
	assert.Len(t, f.notes.got, 1)
}

// ---- logout ----

func TestLogout_ClearsUserAndRedirects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.ctrl.FetchCurrentUser(ctx)

	res := f.ctrl.Logout(ctx)

	assert.True(t, res.OK)
	assert.Nil(t, f.ctrl.User())
	assert.Equal(t, []Route{RouteLogin}, f.nav.routes)
	assert.Empty(t, f.notes.got)
}

func TestLogout_FailureStillRedirectsAndNotifies(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.ctrl.FetchCurrentUser(ctx)
	f.client.LogoutErr = errors.New("boom")

	res := f.ctrl.Logout(ctx)

	assert.False(t, res.OK)
	assert.Nil(t, f.ctrl.User())
	assert.Equal(t, []Route{RouteLogin}, f.nav.routes)
	assert.Equal(t, []Notification{{Level: LevelError, Message: "boom"}}, f.notes.got)
	assert.False(t, f.ctrl.Loading())
}

// ---- loading discipline ----

type panickingClient struct{ fakeClient }

func (p *panickingClient) Logout(context.Context) error { panic("transport bug") }

func TestTrack_PanicStillSettlesLoading(t *testing.T) {
	tracker := NewTracker(nil)
	c := NewController(&panickingClient{}, &recordingNotifier{}, &recordingNavigator{}, tracker, logging.Discard())

	require.Panics(t, func() { c.Logout(context.Background()) })
	assert.False(t, tracker.Active())
}

func TestUser_ReturnsCopy(t *testing.T) {
	f := newFixture(t)
	f.ctrl.FetchCurrentUser(context.Background())

	u := f.ctrl.User()
	u.Name = "mutated"

	assert.Equal(t, "Ann", f.ctrl.User().Name)
}

func TestReset(t *testing.T) {
	f := newFixture(t)
	f.ctrl.FetchCurrentUser(context.Background())
	f.ctrl.Reset()
	assert.Nil(t, f.ctrl.User())
}

// gatedClient blocks Login and CurrentUser until their gate is closed, so
// two operations can be held in flight at once.
type gatedClient struct {
	started   chan string
	loginGate chan struct{}
	meGate    chan struct{}
}

func newGatedClient() *gatedClient {
	return &gatedClient{
		started:   make(chan string, 2),
		loginGate: make(chan struct{}),
		meGate:    make(chan struct{}),
	}
}

func (g *gatedClient) Login(context.Context, models.LoginInput) error {
	g.started <- "login"
	<-g.loginGate
	return nil
}

func (g *gatedClient) CurrentUser(context.Context) (*models.User, error) {
	g.started <- "me"
	<-g.meGate
	return &models.User{ID: "1", Name: "Ann"}, nil
}

func (g *gatedClient) Register(context.Context, models.RegisterInput) error { return nil }
func (g *gatedClient) Logout(context.Context) error                         { return nil }
func (g *gatedClient) Close() error                                         { return nil }

func TestController_OverlappingOperationsKeepLoading(t *testing.T) {
	g := newGatedClient()
	tracker := NewTracker(nil)
	c := NewController(g, &recordingNotifier{}, &recordingNavigator{}, tracker, logging.Discard())
	ctx := context.Background()

	loginDone := make(chan struct{})
	go func() {
		defer close(loginDone)
		c.Login(ctx, validLogin)
	}()
	<-g.started

	meDone := make(chan struct{})
	go func() {
		defer close(meDone)
		c.FetchCurrentUser(ctx)
	}()
	<-g.started

	require.True(t, c.Loading())
	assert.EqualValues(t, 2, tracker.InFlight())

	close(g.loginGate)
	<-loginDone
	assert.True(t, c.Loading(), "profile fetch still in flight")
	assert.EqualValues(t, 1, tracker.InFlight())

	close(g.meGate)
	<-meDone
	assert.False(t, c.Loading())
	require.NotNil(t, c.User())
	assert.Equal(t, "Ann", c.User().Name)
}
