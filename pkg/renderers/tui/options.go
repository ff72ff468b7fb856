package tui

// Theme captures optional message prefixes.
type Theme struct {
	InfoPrefix string
}

// Option configures the Prompter.
type Option func(*Prompter)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(p *Prompter) {
		if driver != nil {
			p.driver = driver
		}
	}
}

// WithPageSize limits how many options are shown at once.
func WithPageSize(size int) Option {
	return func(p *Prompter) {
		if size > 0 {
			p.pageSize = size
		}
	}
}

// WithConfirmation asks the user to confirm each answer before moving on.
func WithConfirmation(enabled bool) Option {
	return func(p *Prompter) {
		p.confirm = enabled
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(p *Prompter) {
		p.theme = theme
	}
}
