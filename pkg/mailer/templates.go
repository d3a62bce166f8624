package mailer

import "fmt"

const layout = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background: #f4f4f5; margin: 0; padding: 24px;">
  <div style="max-width: 560px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 32px;">
    <h1 style="font-size: 20px; color: #18181b; margin-top: 0;">%s</h1>
    %s
    <p style="color: #71717a; font-size: 12px; margin-top: 32px;">
      JustDoStuff &middot; you received this email because of activity on your account.
    </p>
  </div>
</body>
</html>`

// BookingDetails carries the denormalized booking fields the templates render.
type BookingDetails struct {
	ExperienceTitle string
	Date            string
	TimeRange       string
	SeekerName      string
	ProviderName    string
	BookingURL      string
}

func BookingRequested(d BookingDetails) (subject, body string) {
	subject = "New booking request: " + d.ExperienceTitle
	content := fmt.Sprintf(`
    <p style="color: #3f3f46;"><strong>%s</strong> requested to join your experience.</p>
    <p style="color: #3f3f46;">%s<br>%s<br>%s</p>
    <a href="%s" style="display: inline-block; background: #18181b; color: #ffffff; padding: 10px 20px; border-radius: 6px; text-decoration: none;">Review request</a>`,
		d.SeekerName, d.ExperienceTitle, d.Date, d.TimeRange, d.BookingURL)
	return subject, fmt.Sprintf(layout, "New booking request", content)
}

func BookingConfirmed(d BookingDetails) (subject, body string) {
	subject = "Booking confirmed: " + d.ExperienceTitle
	content := fmt.Sprintf(`
    <p style="color: #3f3f46;"><strong>%s</strong> confirmed your booking. You're in!</p>
    <p style="color: #3f3f46;">%s<br>%s<br>%s</p>
    <a href="%s" style="display: inline-block; background: #18181b; color: #ffffff; padding: 10px 20px; border-radius: 6px; text-decoration: none;">View booking</a>`,
		d.ProviderName, d.ExperienceTitle, d.Date, d.TimeRange, d.BookingURL)
	return subject, fmt.Sprintf(layout, "You're confirmed", content)
}

func BookingDeclined(d BookingDetails) (subject, body string) {
	subject = "Booking update: " + d.ExperienceTitle
	content := fmt.Sprintf(`
    <p style="color: #3f3f46;">Unfortunately <strong>%s</strong> couldn't accept your request for %s on %s.</p>
    <p style="color: #3f3f46;">Your spot was not charged and the slot has been released. Browse other experiences any time.</p>
    <a href="%s" style="display: inline-block; background: #18181b; color: #ffffff; padding: 10px 20px; border-radius: 6px; text-decoration: none;">Find another experience</a>`,
		d.ProviderName, d.ExperienceTitle, d.Date, d.BookingURL)
	return subject, fmt.Sprintf(layout, "Request declined", content)
}

func BookingCancelled(d BookingDetails, reason string) (subject, body string) {
	subject = "Booking cancelled: " + d.ExperienceTitle
	content := fmt.Sprintf(`
    <p style="color: #3f3f46;">The booking for <strong>%s</strong> on %s was cancelled.</p>
    <p style="color: #3f3f46;">Reason: %s</p>
    <a href="%s" style="display: inline-block; background: #18181b; color: #ffffff; padding: 10px 20px; border-radius: 6px; text-decoration: none;">View details</a>`,
		d.ExperienceTitle, d.Date, reason, d.BookingURL)
	return subject, fmt.Sprintf(layout, "Booking cancelled", content)
}

func VerificationSubmitted(userName string) (subject, body string) {
	subject = "Verification request received"
	content := fmt.Sprintf(`
    <p style="color: #3f3f46;">Hi %s,</p>
    <p style="color: #3f3f46;">We received your identity verification request. Our team reviews submissions within 2 business days and will email you once a decision is made.</p>`,
		userName)
	return subject, fmt.Sprintf(layout, "Verification in review", content)
}
