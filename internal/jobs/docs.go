// Package jobs provides scheduled background tasks.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// OutboxRelayJob - every second by default, moves committed order status
// events from the outbox table to the configured notification sink.
package jobs
