// Package timezone keeps the client's notion of "now" and "today".
//
// Usage:
//
//	timezone.Init(cfg.App.Timezone)       // once, at start-up
//	now := timezone.Now()                 // current time in the app timezone
//	today := timezone.Today()             // midnight of the current day
//	d, err := timezone.Parse("1/2/2006", "5/1/2024")
//
// Until Init runs, the process local timezone is used. Names must be IANA
// timezone database names such as "UTC" or "America/Los_Angeles".
package timezone
