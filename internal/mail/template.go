package mail

import "fmt"

// WrapHTML wraps a message body in the shared email chrome.
func WrapHTML(body string) string {
	return fmt.Sprintf(`
	<div style="
		border: 1px solid black;
		padding: 20px;
		font-family: sans-serif;
		line-height: 2;
		font-size: 20px;
	">
		<h2>Hello there!</h2>
		<p>%s</p>
		<p>AskHub</p>
	</div>
	`, body)
}

// ResetEmailHTML builds the password reset email body with a link back to
// the frontend carrying the reset token.
func ResetEmailHTML(frontendURL, resetToken string) string {
	return WrapHTML(fmt.Sprintf(
		`Your password reset token is here!
		<br/><br/>
		<a href="%s/reset?resetToken=%s">Click here to reset</a>`,
		frontendURL, resetToken,
	))
}
