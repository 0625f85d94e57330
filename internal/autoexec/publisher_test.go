// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package autoexec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aibor/dosboot/internal/autoexec"
)

// identityTranscoder counts its invocations and returns the input bytes
// tagged with the code page, so published content is distinguishable.
type identityTranscoder struct {
	calls int
}

func (t *identityTranscoder) Transcode(text string, codePage uint16) ([]byte, error) {
	t.calls++

	data := append([]byte(text), byte(codePage), byte(codePage>>8))

	return data, nil
}

type fakeRegistry struct {
	registers int
	updates   int
	files     map[string][]byte
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		files: make(map[string][]byte),
	}
}

func (r *fakeRegistry) Register(name string, data []byte) error {
	r.registers++
	r.files[name] = data

	return nil
}

func (r *fakeRegistry) Update(name string, data []byte) error {
	r.updates++
	r.files[name] = data

	return nil
}

type fakeGuestEnv struct {
	vars map[string]string
}

func (e *fakeGuestEnv) SetEnv(name, value string) error {
	e.vars[name] = value

	return nil
}

func TestPublisherRegister(t *testing.T) {
	composer := autoexec.NewComposer()
	composer.SetEchoOff(true)

	transcoder := &identityTranscoder{}
	registry := newFakeRegistry()
	publisher := autoexec.NewPublisher(composer, transcoder, registry)

	require.NoError(t, publisher.Register(437))

	assert.Equal(t, 1, registry.registers, "registers")
	assert.Equal(t, 0, registry.updates, "updates")
	assert.Contains(t, registry.files, autoexec.FileName)

	require.NoError(t, publisher.Register(437))

	assert.Equal(t, 1, registry.registers, "registers after refresh")
	assert.Equal(t, 1, registry.updates, "updates after refresh")
}

func TestPublisherNotifyCodePageChanged(t *testing.T) {
	t.Run("before first publish is a no-op", func(t *testing.T) {
		composer := autoexec.NewComposer()
		transcoder := &identityTranscoder{}
		registry := newFakeRegistry()
		publisher := autoexec.NewPublisher(composer, transcoder, registry)

		require.NoError(t, publisher.NotifyCodePageChanged(850))

		assert.Zero(t, transcoder.calls, "transcoder calls")
		assert.Empty(t, registry.files, "registered files")
	})

	t.Run("unchanged code page skips transcoding", func(t *testing.T) {
		composer := autoexec.NewComposer()
		composer.SetEchoOff(true)

		transcoder := &identityTranscoder{}
		registry := newFakeRegistry()
		publisher := autoexec.NewPublisher(composer, transcoder, registry)

		require.NoError(t, publisher.Register(437))
		require.NoError(t, publisher.NotifyCodePageChanged(437))

		assert.Equal(t, 1, transcoder.calls, "transcoder calls")
		assert.Equal(t, 0, registry.updates, "updates")
	})

	t.Run("new code page republishes cached script", func(t *testing.T) {
		composer := autoexec.NewComposer()
		composer.SetEchoOff(true)

		transcoder := &identityTranscoder{}
		registry := newFakeRegistry()
		publisher := autoexec.NewPublisher(composer, transcoder, registry)

		require.NoError(t, publisher.Register(437))

		// Composer changes after the publish must not leak into the
		// republished script. Only a new Register picks them up.
		composer.AddCommandAfter("@EXIT")

		require.NoError(t, publisher.NotifyCodePageChanged(850))

		assert.Equal(t, 2, transcoder.calls, "transcoder calls")
		assert.Equal(t, 1, registry.updates, "updates")

		expected := append(
			[]byte(":: autogenerated\r\n\r\n@ECHO OFF\r\n\r\n"),
			0x52, 0x03,
		)
		assert.Equal(t, expected, registry.files[autoexec.FileName])
	})

	t.Run("after shutdown is a no-op", func(t *testing.T) {
		composer := autoexec.NewComposer()
		transcoder := &identityTranscoder{}
		registry := newFakeRegistry()
		publisher := autoexec.NewPublisher(composer, transcoder, registry)

		require.NoError(t, publisher.Register(437))

		publisher.Shutdown()

		require.NoError(t, publisher.NotifyCodePageChanged(850))

		assert.Equal(t, 1, transcoder.calls, "transcoder calls")
	})
}

func TestPublisherSetVariable(t *testing.T) {
	t.Run("without guest env", func(t *testing.T) {
		composer := autoexec.NewComposer()
		publisher := autoexec.NewPublisher(
			composer, &identityTranscoder{}, newFakeRegistry(),
		)

		require.NoError(t, publisher.SetVariable("path", `Z:\`))

		assert.Contains(t, composer.Render(), `@SET PATH=Z:\`+"\r\n")
	})

	t.Run("propagates into attached guest env", func(t *testing.T) {
		composer := autoexec.NewComposer()
		publisher := autoexec.NewPublisher(
			composer, &identityTranscoder{}, newFakeRegistry(),
		)

		env := &fakeGuestEnv{vars: make(map[string]string)}
		publisher.AttachGuestEnv(env)

		require.NoError(t, publisher.SetVariable("blaster", "A220"))

		assert.Equal(t, map[string]string{"BLASTER": "A220"}, env.vars)
	})
}
