// Package notify delivers out-of-band failure notifications for sync runs.
//
// Interactive callers only ever see a generic failure message; the specific
// reason (bad API status, missing title, upsert error, ...) travels through
// a Notifier so the site admin learns what actually broke. The SMTP Mailer
// sends one HTML email per failure; without SMTP configuration the
// LogNotifier writes the same information to the application log.
//
// Notifications are fire-and-forget by contract: delivery failures are
// logged and never surface to the sync run.
package notify
