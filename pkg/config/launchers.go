package config

// LauncherCommand описва допълнителни аргументи за launcher
type LauncherCommand struct {
	Args []string
}

// LauncherArgs returns the extra arguments configured for the named menu
// program. The result is a copy and may be appended to.
func (c *Config) LauncherArgs(name string) []string {
	lc, ok := c.Launchers[name]
	if !ok || len(lc.Args) == 0 {
		return nil
	}
	return append([]string(nil), lc.Args...)
}

// mergeLauncherConfigs copies the launchers section. The result is never
// nil and an empty args list is stored as nil.
func mergeLauncherConfigs(user map[string]launcherFile) map[string]LauncherCommand {
	merged := make(map[string]LauncherCommand, len(user))
	for name, lf := range user {
		merged[name] = LauncherCommand{Args: append([]string(nil), lf.Args...)}
	}
	return merged
}

// mergeNotificationConfig мерджва notification конфигурация
func mergeNotificationConfig(merged *NotificationConfig, user *notificationFile) {
	if user == nil {
		return
	}

	if user.Enabled != nil {
		merged.Enabled = *user.Enabled
	}
	if user.Tool != nil {
		merged.Tool = *user.Tool
	}
	if user.Timeout != nil {
		merged.Timeout = *user.Timeout
	}
	if user.Urgency != nil {
		merged.Urgency = *user.Urgency
	}
	if user.ShowInTerminal != nil {
		merged.ShowInTerminal = *user.ShowInTerminal
	}
}
