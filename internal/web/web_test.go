package web_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/golfscore/internal/factory"
	"github.com/mcoot/golfscore/internal/middleware"
	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/services/round"
	"github.com/mcoot/golfscore/internal/testutil"
	"github.com/mcoot/golfscore/internal/web"
	webmw "github.com/mcoot/golfscore/internal/web/middleware"
)

// webTestServer serves the web router over a test app with mocked clock and IDs
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.TestApp
}

func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	app := factory.NewTestApp()
	require.NoError(t, app.LoadTestCourses())

	router := web.NewRouter(web.RouterConfig{
		Logger:          testutil.NopLogger(),
		CourseService:   app.CourseService,
		RoundController: app.RoundController,
	})
	return &webTestServer{t: t, handler: router, app: app}
}

func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *webTestServer) page(path string, status int) *goquery.Document {
	ts.t.Helper()
	rr := ts.get(path)
	require.Equal(ts.t, status, rr.Code, rr.Body.String())
	assert.Equal(ts.t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	doc, err := goquery.NewDocumentFromReader(rr.Body)
	require.NoError(ts.t, err)
	return doc
}

// startRound starts a skins round at the park between Ann (18 handicap) and Ben (scratch)
func (ts *webTestServer) startRound(id string) *model.RoundState {
	ts.t.Helper()
	ts.app.MockRandom.QueueString(id)
	state, err := ts.app.RoundController.StartRound(ts.t.Context(), round.Setup{
		CourseID: "park",
		Players: []model.Player{
			{Name: "Ann", HandicapIndex: 18, TeeColor: "white"},
			{Name: "Ben", TeeColor: "white"},
		},
		Formats: []model.Format{model.FormatSkins},
	})
	require.NoError(ts.t, err)
	return state
}

func (ts *webTestServer) score(id model.RoundID, ann, ben int) {
	ts.t.Helper()
	_, err := ts.app.RoundController.RecordScore(ts.t.Context(), id, "Ann", ann)
	require.NoError(ts.t, err)
	_, err = ts.app.RoundController.RecordScore(ts.t.Context(), id, "Ben", ben)
	require.NoError(ts.t, err)
}

func text(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

func TestHomeListsCourses(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.page("/", http.StatusOK)
	assert.Equal(t, "Courses | Golfscore", text(doc.Find("title")))
	rows := doc.Find("#courses tbody tr")
	assert.Equal(t, 8, rows.Length())

	park := doc.Find(`#courses tr[data-course="park"]`)
	require.Equal(t, 1, park.Length())
	href, _ := park.Find("a").Attr("href")
	assert.Equal(t, "/courses/park", href)
	assert.Equal(t, "Park Links", text(park.Find("a")))
	assert.Equal(t, "Testville", text(park.Find("td").Eq(1)))
	assert.Equal(t, "18", text(park.Find("td").Eq(2)))
	assert.Equal(t, "72", text(park.Find("td").Eq(3)))
	assert.Equal(t, "2", text(park.Find("td").Eq(4)))
}

func TestHomeFiltersByQuery(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.page("/?q=scotland", http.StatusOK)
	assert.Equal(t, 6, doc.Find("#courses tbody tr").Length())
	value, _ := doc.Find(`input[name="q"]`).Attr("value")
	assert.Equal(t, "scotland", value)

	doc = ts.page("/?q=nowhere", http.StatusOK)
	assert.Equal(t, 0, doc.Find("#courses").Length())
	assert.Equal(t, `No courses match "nowhere".`, text(doc.Find("p.empty")))
}

func TestCoursePage(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.page("/courses/park", http.StatusOK)
	assert.Equal(t, "Park Links", text(doc.Find("h1")))
	assert.Equal(t, "Testville", text(doc.Find("p.location")))

	blue := doc.Find(`#tees tr[data-tee="blue"] td`)
	require.Equal(t, 4, blue.Length())
	assert.Equal(t, "Blue Tees", text(blue.Eq(0)))
	assert.Equal(t, "74.0", text(blue.Eq(1)))
	assert.Equal(t, "130", text(blue.Eq(2)))

	holes := doc.Find("#holes tbody tr")
	require.Equal(t, 18, holes.Length())
	first := holes.First().Find("td")
	assert.Equal(t, []string{"1", "4", "7", "350"}, []string{
		text(first.Eq(0)), text(first.Eq(1)), text(first.Eq(2)), text(first.Eq(3)),
	})
}

func TestCourseNotFound(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.page("/courses/nowhere", http.StatusNotFound)
	assert.Equal(t, "Course not found", text(doc.Find("h1")))
}

func TestScorecardInProgress(t *testing.T) {
	ts := newWebTestServer(t)
	state := ts.startRound("WEBCARD1")
	ts.score(state.ID, 5, 4)

	doc := ts.page("/rounds/WEBCARD1/scorecard", http.StatusOK)
	assert.Equal(t, "Park Links", text(doc.Find("h1")))
	assert.Equal(t, "Round WEBCARD1 · Hole 1 of 18", text(doc.Find("p.round")))

	current := doc.Find("#scorecard thead th.current")
	require.Equal(t, 1, current.Length())
	assert.Equal(t, "1", text(current))

	ann := doc.Find(`#scorecard tr.player[data-player="Ann"]`)
	require.Equal(t, 1, ann.Length())
	assert.Equal(t, "18", text(ann.Find("small.handicap")))
	assert.Equal(t, "5", text(ann.Find("td.out")))
	assert.Equal(t, "5", text(ann.Find("td.total")))
	assert.Equal(t, "2", text(ann.Find("td.points")))

	firstHole := ann.Find("td").First()
	assert.Equal(t, "5", text(firstHole))
	assert.True(t, firstHole.HasClass("current"))
	assert.True(t, firstHole.HasClass("stroke"))
	title, _ := firstHole.Attr("title")
	assert.Equal(t, "net 4, 2 pts", title)

	ben := doc.Find(`#scorecard tr.player[data-player="Ben"]`)
	assert.Equal(t, "0", text(ben.Find("small.handicap")))
	assert.False(t, ben.Find("td").First().HasClass("stroke"))
	assert.Equal(t, "4", text(ben.Find("td.total")))

	assert.Equal(t, 1, doc.Find("ul.status li").Length())
	assert.Equal(t, 0, doc.Find("ul.winners").Length())
}

func TestScorecardComplete(t *testing.T) {
	ts := newWebTestServer(t)
	state := ts.startRound("WEBCARD2")
	ts.score(state.ID, 3, 5)
	_, err := ts.app.RoundController.CompleteRound(t.Context(), state.ID)
	require.NoError(t, err)

	doc := ts.page("/rounds/WEBCARD2/scorecard", http.StatusOK)
	assert.Equal(t, "Round WEBCARD2 · Complete", text(doc.Find("p.round")))
	assert.Equal(t, 0, doc.Find("#scorecard .current").Length())

	winners := doc.Find("ul.winners li")
	require.Equal(t, 1, winners.Length())
	assert.True(t, strings.HasPrefix(text(winners), "Skins: Ann"), text(winners))
}

func TestScorecardRoundNotFound(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.page("/rounds/NOPE/scorecard", http.StatusNotFound)
	assert.Equal(t, "Round not found", text(doc.Find("h1")))
}

func TestUnknownPage(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.page("/clubhouse", http.StatusNotFound)
	assert.Equal(t, "Page not found", text(doc.Find("h1")))
}

func TestRequestIDHeader(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/")
	assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeader))
}

func TestPanicRendersErrorPage(t *testing.T) {
	handler := middleware.RequestID()(webmw.Recovery(testutil.NopLogger())(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("divot") }),
	))
	req := httptest.NewRequest(http.MethodGet, "/rounds/X/scorecard", nil)
	req.Header.Set(middleware.RequestIDHeader, "6f1c9a52-3b7e-4d2a-9c1e-5a8b7d6e4f30")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	doc, err := goquery.NewDocumentFromReader(rr.Body)
	require.NoError(t, err)
	assert.Equal(t, "Something went wrong", text(doc.Find("h1")))
	assert.Equal(t, "The page could not be shown. Request 6f1c9a52-3b7e-4d2a-9c1e-5a8b7d6e4f30.", text(doc.Find("p.error")))
}
