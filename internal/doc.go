// Package internal implements the campaign engine behind the mailmerge
// facade.
//
// A Campaign binds the pieces the public packages provide - a template
// (pkg/template), a recipient roster (pkg/roster), a parameter registry
// (pkg/params), and a delivery provider (pkg/mailer) - and runs them as
// one unit.
//
// # Lifecycle
//
// Campaigns are immutable after New. A run proceeds in two phases:
//
//  1. Preflight: named health checks (template placeholders resolve, the
//     roster is non-empty, the provider answers, recipient domains accept
//     mail) run in parallel via pkg/health. Any failure refuses the run.
//  2. Delivery: one personalized message per recipient, sent sequentially
//     in roster order. Recipient statuses move pending -> sending ->
//     sent/failed as the run progresses.
//
// A failed recipient is recorded and skipped; it never stops the run.
// Canceling the run context stops delivery between recipients and returns
// ErrRunAborted with the partial Report.
//
// Preview composes personalized messages for the first recipients without
// delivering anything, so content can be proofread with real roster data.
//
// # Observability
//
// Every run gets a ULID run ID. It appears in each log line, in the
// Report, and as the X-Campaign-Run header on every delivered message, so
// one campaign run can be traced across logs, provider dashboards, and
// the Redis outbox.
//
// # Scheduling
//
// Scheduler wraps robfig/cron to send campaigns on standard 5-field cron
// expressions. Overlapping runs of the same campaign are skipped, not
// queued.
package internal
