package presenter

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/dapur-ai/backend/internal/client"
	"github.com/pageza/dapur-ai/backend/internal/locale"
	"github.com/pageza/dapur-ai/backend/internal/logger"
	"github.com/pageza/dapur-ai/backend/internal/model"
)

const twoDishes = `{"dishes":[
	{"name":"Nasi Goreng","calories":520,"estimatedTimeMinutes":15,
	 "ingredients":["nasi","telur"],"steps":["Tumis","Sajikan"],
	 "macros":{"protein_g":18,"carbs_g":70.5,"fat_g":16}},
	{"name":"Telur Dadar","calories":200,"estimatedTimeMinutes":10,
	 "macros":{"protein_g":12,"carbs_g":2,"fat_g":15}}
]}`

type scheduled struct {
	delay time.Duration
	run   func()
}

// newPresenter wires a presenter to a stub server and captures the status
// cleanup instead of running it on a timer.
func newPresenter(t *testing.T, status int, body string) (*Presenter, *int32, *scheduled) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	sched := &scheduled{}
	msgs := locale.For(locale.Indonesian)
	p := New(
		client.New(srv.URL, locale.Indonesian),
		NewViewModel(msgs),
		msgs,
		logger.Discard(),
		WithScheduler(func(d time.Duration, f func()) {
			sched.delay = d
			sched.run = f
		}),
	)
	return p, &calls, sched
}

func TestNewViewModel(t *testing.T) {
	msgs := locale.For(locale.Indonesian)
	s := NewViewModel(msgs).Snapshot()

	assert.Equal(t, "Belum ada hasil. Coba generate resep!", s.Placeholder)
	assert.Empty(t, s.Dishes)
	assert.Empty(t, s.Status)
	assert.False(t, s.TriggerDisabled)
}

func TestSubmit_BlankInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		p, calls, sched := newPresenter(t, http.StatusOK, twoDishes)

		p.Submit(context.Background(), raw)

		s := p.ViewModel().Snapshot()
		assert.Equal(t, "Mohon isi bahan terlebih dahulu.", s.Placeholder)
		assert.Empty(t, s.Dishes)
		assert.Empty(t, s.Status)
		assert.EqualValues(t, 0, atomic.LoadInt32(calls))
		assert.Nil(t, sched.run)
	}
}

func TestSubmit_Success(t *testing.T) {
	p, calls, sched := newPresenter(t, http.StatusOK, twoDishes)

	p.Submit(context.Background(), "  nasi, telur  ")

	s := p.ViewModel().Snapshot()
	assert.EqualValues(t, 1, atomic.LoadInt32(calls))
	require.Len(t, s.Dishes, 2)
	assert.Equal(t, "Nasi Goreng", s.Dishes[0].Name)
	assert.EqualValues(t, 520, s.Dishes[0].Calories)
	assert.Equal(t, model.Amount(70.5), s.Dishes[0].Macros.CarbsG)
	assert.Equal(t, []string{}, s.Dishes[1].Ingredients)
	assert.Equal(t, []string{}, s.Dishes[1].Steps)
	assert.Equal(t, "Selesai ✅", s.Status)
	assert.Empty(t, s.Placeholder)
	assert.Empty(t, s.Error)
	assert.False(t, s.TriggerDisabled)

	require.NotNil(t, sched.run)
	assert.Equal(t, StatusClearDelay, sched.delay)
	sched.run()
	assert.Empty(t, p.ViewModel().Snapshot().Status)
	assert.Len(t, p.ViewModel().Snapshot().Dishes, 2)
}

func TestSubmit_EmptyResult(t *testing.T) {
	for _, body := range []string{`{"dishes":[]}`, `{}`, `{"dishes":"nope"}`} {
		p, _, sched := newPresenter(t, http.StatusOK, body)

		p.Submit(context.Background(), "batu")

		s := p.ViewModel().Snapshot()
		assert.Equal(t, "AI tidak mengembalikan resep. Coba ubah bahan.", s.Placeholder, body)
		assert.Empty(t, s.Dishes)
		assert.Empty(t, s.Error)
		assert.False(t, s.TriggerDisabled)
		assert.NotNil(t, sched.run)
	}
}

func TestSubmit_ServerError(t *testing.T) {
	p, _, sched := newPresenter(t, http.StatusInternalServerError, "boom")

	p.Submit(context.Background(), "nasi")

	s := p.ViewModel().Snapshot()
	assert.Equal(t, "Terjadi kesalahan: boom", s.Error)
	assert.Contains(t, s.Error, "boom")
	assert.Empty(t, s.Dishes)
	assert.Empty(t, s.Placeholder)
	assert.Empty(t, s.Status)
	assert.False(t, s.TriggerDisabled)
	assert.NotNil(t, sched.run)
}

func TestSubmit_ServerErrorEmptyBody(t *testing.T) {
	p, _, _ := newPresenter(t, http.StatusBadGateway, "")

	p.Submit(context.Background(), "nasi")

	assert.Equal(t, "Terjadi kesalahan: Server error: 502", p.ViewModel().Snapshot().Error)
}

func TestSubmit_InvalidJSON(t *testing.T) {
	p, _, _ := newPresenter(t, http.StatusOK, "<html>")

	p.Submit(context.Background(), "nasi")

	s := p.ViewModel().Snapshot()
	assert.Contains(t, s.Error, "Terjadi kesalahan: ")
	assert.Empty(t, s.Dishes)
}

func TestSubmit_ReplacesPreviousResults(t *testing.T) {
	p, _, _ := newPresenter(t, http.StatusOK, twoDishes)
	p.Submit(context.Background(), "nasi")
	require.Len(t, p.ViewModel().Snapshot().Dishes, 2)

	p.Submit(context.Background(), " ")

	s := p.ViewModel().Snapshot()
	assert.Empty(t, s.Dishes)
	assert.Equal(t, "Mohon isi bahan terlebih dahulu.", s.Placeholder)
}

func TestRenderText(t *testing.T) {
	p, _, _ := newPresenter(t, http.StatusOK, twoDishes)
	p.Submit(context.Background(), "nasi")

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, p.ViewModel().Snapshot()))

	out := buf.String()
	assert.Contains(t, out, "Selesai ✅")
	assert.Contains(t, out, "Nasi Goreng")
	assert.Contains(t, out, "~520 kkal • 15 menit")
	assert.Contains(t, out, "[Karb 70.5g]")
	assert.Contains(t, out, "- telur")
	assert.Contains(t, out, "2. Sajikan")
}

func TestRenderText_ErrorAndPlaceholder(t *testing.T) {
	msgs := locale.For(locale.English)

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, Snapshot{Messages: msgs, Error: "Error: boom"}))
	assert.Equal(t, "Error: boom\n", buf.String())

	buf.Reset()
	require.NoError(t, RenderText(&buf, Snapshot{Messages: msgs, Placeholder: msgs.NoResultsYet}))
	assert.Equal(t, msgs.NoResultsYet+"\n", buf.String())
}

func TestHTMLTemplate(t *testing.T) {
	p, _, _ := newPresenter(t, http.StatusOK, twoDishes)
	p.Submit(context.Background(), "nasi")

	var buf bytes.Buffer
	err := HTMLTemplate().Execute(&buf, PageData{
		Snapshot:    p.ViewModel().Snapshot(),
		Ingredients: "nasi <b>",
		Lang:        "id",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `<html lang="id">`)
	assert.Contains(t, out, "<h3>Nasi Goreng</h3>")
	assert.Contains(t, out, "nasi &lt;b&gt;")
	assert.Contains(t, out, "<li>Tumis</li>")
}
