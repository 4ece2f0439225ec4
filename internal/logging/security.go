// Copyright 2025 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger writes audit events that operators alert on.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "sys_shutdown"))
}

func (s *SecurityLogger) AuthzFailure(subject, operation string) {
	s.l.Warn("authorization failure",
		zap.String("event", "authz_fail"),
		zap.String("subject", subject),
		zap.String("operation", operation),
	)
}

// TenantFallback records a tenant resolution that degraded to the fallback
// tenant. Frequent occurrences for the same host usually mean a misconfigured
// directory rather than an attack, but the event is kept on the audit channel
// so unrecognized hosts are visible.
func (s *SecurityLogger) TenantFallback(host, reason string) {
	s.l.Warn("tenant resolution fallback",
		zap.String("event", "tenant_fallback"),
		zap.String("host", host),
		zap.String("reason", reason),
	)
}
