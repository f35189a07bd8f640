package vue_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/vue"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func newRenderer(t *testing.T) *vue.Renderer {
	t.Helper()
	r, err := vue.New()
	if err != nil {
		t.Fatalf("vue.New: %v", err)
	}
	return r
}

func TestRenderer_Skeleton(t *testing.T) {
	r := newRenderer(t)
	if r.Name() != "vue" {
		t.Fatalf("unexpected name %q", r.Name())
	}

	out, err := r.Render(testsupport.Context(), testsupport.ComprehensiveForm(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	src := string(out)
	for _, want := range []string{
		"<template>",
		`<h1 class="text-2xl font-bold mb-4 text-white">Comprehensive Test Form</h1>`,
		`<p class="text-gray-300 mb-6">A form that tests all field types and edge cases</p>`,
		`<form @submit.prevent="onSubmit" class="space-y-6">`,
		`<script setup lang="ts">`,
		"const formData = ref({});",
		"console.log('Form data:', formData.value);",
	} {
		if !strings.Contains(src, want) {
			t.Fatalf("expected output to contain %q\n%s", want, src)
		}
	}
	if strings.Contains(src, "text_field") {
		t.Fatalf("skeleton must not render individual fields")
	}
}

func TestRenderer_DefaultsAndEscaping(t *testing.T) {
	// A second renderer exercises idempotent filter registration.
	r := newRenderer(t)
	newRenderer(t)

	out, err := r.Render(testsupport.Context(), model.FormConfig{ID: "x", Title: "Tom's {{ form }}"}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	src := string(out)
	if !strings.Contains(src, "Tom&#39;s &#123;&#123; form &#125;&#125;") {
		t.Fatalf("expected escaped title\n%s", src)
	}
	if strings.Contains(src, `<p class="text-gray-300 mb-6">`) {
		t.Fatalf("description paragraph should be omitted")
	}

	out, err = r.Render(testsupport.Context(), model.FormConfig{ID: "y"}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), ">Dynamic Form</h1>") {
		t.Fatalf("expected default title\n%s", out)
	}
}

// recordingEngine stands in for an externally supplied template engine.
type recordingEngine struct {
	name string
	data any
}

func (e *recordingEngine) Render(name string, data any, out ...io.Writer) (string, error) {
	return e.RenderTemplate(name, data, out...)
}

func (e *recordingEngine) RenderTemplate(name string, data any, _ ...io.Writer) (string, error) {
	e.name, e.data = name, data
	return "<template />", nil
}

func (e *recordingEngine) RenderString(string, any, ...io.Writer) (string, error) {
	return "", errors.New("not supported")
}

func (e *recordingEngine) RegisterFilter(string, func(any, any) (any, error)) error { return nil }

func (e *recordingEngine) GlobalContext(any) error { return nil }

func TestRenderer_InjectedTemplateEngine(t *testing.T) {
	engine := &recordingEngine{}
	r, err := vue.New(vue.WithTemplateRenderer(engine))
	if err != nil {
		t.Fatalf("vue.New: %v", err)
	}
	form := model.FormConfig{ID: "f", Title: "Signup", Description: " Join us "}
	out, err := r.Render(testsupport.Context(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "<template />" || engine.name != "templates/form.vue.tmpl" {
		t.Fatalf("engine not used: out=%q name=%q", out, engine.name)
	}
	data, ok := engine.data.(map[string]any)
	if !ok || data["title"] != "Signup" || data["description"] != "Join us" {
		t.Fatalf("unexpected template data %#v", engine.data)
	}
}
