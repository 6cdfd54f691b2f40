// Package notifier composes the notification renderer with an email sender.
// It builds the per-recipient rendering context, renders the notice body,
// and hands the finished plain-text message to the configured transport,
// recording structured logs and prometheus counters along the way.
//
//	var cfg notifier.Config
//	config.MustLoad(&cfg)
//
//	n, err := notifier.NewDev(cfg, logger.New(logger.WithDevelopment("notifykit")))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	err = n.NotifyConfigFileDeprecation(ctx, notifier.Recipient{
//		Email: "admin@example.com",
//		Projects: []notification.Project{
//			{Slug: "foo-docs"},
//		},
//	})
//
// Who gets notified and which projects appear in each notice is decided by
// the platform; the notifier takes the recipient list as given.
package notifier
