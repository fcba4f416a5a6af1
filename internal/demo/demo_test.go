package demo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/pthm/hxui"
	"github.com/pthm/hxui/form"
)

func newTestApp(t *testing.T) (*App, *hxui.Registry, *Store) {
	t.Helper()
	reg := hxui.NewRegistry([]byte("demo-secret"))
	store := NewStore()
	return New(reg, store, false), reg, store
}

func TestPage(t *testing.T) {
	app, reg, _ := newTestApp(t)

	if reg.Components() != 2 {
		t.Errorf("Components() = %d, want 2", reg.Components())
	}

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	body := rec.Body.String()
	for _, want := range []string{
		`<main>`,
		`<p><label for="name">Your Name</label><input id="name" type="text"></p>`,
		`<p><label for="age">Your Age</label><input id="age" type="number"></p>`,
		`<p><button class="button">A Button</button></p>`,
		`<p><a class="button" href="https://google.com">An Anchor</a></p>`,
		`<button class="button"></button>`,
		`<div id="toasts"`,
		`hx-post="` + app.signup.Prefix() + `/clear"`,
		`<section id="submissions"`,
		`Nothing saved yet.`,
		`addEventListener("hxui:callback"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page is missing %s", want)
		}
	}
}

func TestSignupRefreshesSubmissions(t *testing.T) {
	app, reg, store := newTestApp(t)
	props := form.Props{
		ID:      "signup-test",
		OnSaved: app.submissions.refresh(submissionsProps{Limit: 10}),
	}

	result := hxui.NewTestRequest(http.MethodPost, app.signup.URL(form.ActionSubmit, props)).
		WithValues(url.Values{"name": {"Alice"}, "age": {"30"}}).
		ExecuteHandler(reg.Handler())

	if !result.IsOK() || !result.HasEvent(form.EventSaved) || !result.HasEvent(hxui.CallbackEvent) {
		t.Fatalf("status = %d, events = %v", result.StatusCode, result.TriggeredEvents)
	}
	if !result.HasFlash(hxui.FlashSuccess, "Thanks, you are signed up") {
		t.Errorf("flashes = %v", result.Flashes)
	}

	list := store.List()
	if len(list) != 1 || list[0].Values["name"] != "Alice" || list[0].Values["age"] != "30" {
		t.Fatalf("List() = %+v", list)
	}

	refreshed := hxui.NewTestRequest(http.MethodGet, props.OnSaved.URL).ExecuteHandler(reg.Handler())
	if !refreshed.IsOK() || !refreshed.HTMLContains("<li>age: 30, name: Alice</li>") {
		t.Errorf("status = %d, submissions = %s", refreshed.StatusCode, refreshed.HTML)
	}
	if !strings.HasPrefix(refreshed.HTML, `<section id="submissions">`) {
		t.Errorf("callback did not render the list section: %s", refreshed.HTML)
	}
}

func TestStoreNewestFirst(t *testing.T) {
	store := NewStore()
	store.Save(context.Background(), map[string]string{"n": "1"})
	store.Save(context.Background(), map[string]string{"n": "2"})

	list := store.List()
	if len(list) != 2 || list[0].Values["n"] != "2" || list[0].ID == list[1].ID {
		t.Errorf("List() = %+v", list)
	}
}
