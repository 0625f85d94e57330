// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package autoexec

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// FileName is the name the published script is registered with on the
// guest's virtual drive.
const FileName = "AUTOEXEC.BAT"

// Transcoder converts the rendered UTF-8 script into the byte encoding of a
// guest code page. It must be deterministic. Runes that are not
// representable in the target code page must be replaced by a fixed
// fallback.
type Transcoder interface {
	Transcode(text string, codePage uint16) ([]byte, error)
}

// TranscodeFunc adapts a plain function to the [Transcoder] interface.
type TranscodeFunc func(text string, codePage uint16) ([]byte, error)

// Transcode implements [Transcoder].
func (f TranscodeFunc) Transcode(text string, codePage uint16) ([]byte, error) {
	return f(text, codePage)
}

// Registry is the virtual file store the published script byte image is
// exposed to the guest in. Register is called exactly once for a file name,
// all further publications use Update.
type Registry interface {
	Register(name string, data []byte) error
	Update(name string, data []byte) error
}

// GuestEnv receives live environment variable updates for an already
// running guest command interpreter.
type GuestEnv interface {
	SetEnv(name, value string) error
}

// Publisher renders a [Composer] and keeps the published byte image of the
// script in sync with the guest's active code page.
//
// The publisher caches the rendered UTF-8 script and the code page the last
// published byte image was generated for. A code page change notification
// re-encodes the cached script without rendering the composer again.
//
// All methods are safe for concurrent use.
type Publisher struct {
	mu sync.Mutex

	composer   *Composer
	transcoder Transcoder
	registry   Registry
	env        GuestEnv

	script     string
	registered bool
	codePage   uint16
	shutdown   bool
}

// NewPublisher creates a new [Publisher] publishing the given composer's
// script via the given transcoder into the given registry.
func NewPublisher(
	composer *Composer,
	transcoder Transcoder,
	registry Registry,
) *Publisher {
	return &Publisher{
		composer:   composer,
		transcoder: transcoder,
		registry:   registry,
	}
}

// AttachGuestEnv attaches the live environment of a running guest command
// interpreter. Once attached, [Publisher.SetVariable] propagates variables
// into it immediately, in addition to updating the script for future
// publications.
func (p *Publisher) AttachGuestEnv(env GuestEnv) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.env = env
}

// SetVariable updates a variable in the underlying composer. If a guest
// environment is attached, the variable is propagated into it as well, so
// an already running command interpreter sees the change without the script
// being re-run.
//
// The published script is not refreshed. Call [Publisher.Register] once all
// variable updates are done.
func (p *Publisher) SetVariable(name, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.composer.SetVariable(name, value)
	if err != nil {
		return err
	}

	if p.env != nil {
		err := p.env.SetEnv(strings.ToUpper(name), value)
		if err != nil {
			return fmt.Errorf("propagate variable: %w", err)
		}
	}

	return nil
}

// Register renders the composer and publishes the script encoded in the
// given code page. The first call registers the virtual file, all further
// calls update it in place. Call it again whenever the composer state
// changed.
func (p *Publisher) Register(codePage uint16) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.script = p.composer.Render()

	return p.publish(codePage)
}

// NotifyCodePageChanged re-publishes the script for a new active guest code
// page. It does nothing if no script has been published yet, if the code
// page did not actually change, or if the publisher has been shut down. The
// cached rendered script is re-encoded as is, the composer is not rendered
// again.
func (p *Publisher) NotifyCodePageChanged(codePage uint16) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.shutdown || !p.registered {
		return nil
	}

	if codePage == p.codePage {
		return nil
	}

	return p.publish(codePage)
}

// Shutdown stops all future code page change processing.
func (p *Publisher) Shutdown() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.shutdown = true
}

// publish encodes the cached script and stores it in the registry. The
// caller must hold the mutex.
func (p *Publisher) publish(codePage uint16) error {
	data, err := p.transcoder.Transcode(p.script, codePage)
	if err != nil {
		return fmt.Errorf("transcode: %w", err)
	}

	if p.registered {
		err = p.registry.Update(FileName, data)
	} else {
		err = p.registry.Register(FileName, data)
	}

	if err != nil {
		return fmt.Errorf("publish %s: %w", FileName, err)
	}

	p.registered = true
	p.codePage = codePage

	slog.Debug("Published boot script",
		slog.String("file", FileName),
		slog.Int("codePage", int(codePage)),
		slog.Int("size", len(data)))

	return nil
}
