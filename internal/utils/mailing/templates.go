package mailing

import (
	"bytes"
	"html/template"
)

var (
	verificationTemplate = template.Must(template.New("verify").Parse(`<p>Hi {{.Name}},</p>
<p>Thanks for joining RecipeHub. Please confirm your email address by clicking the link below:</p>
<p><a href="{{.Link}}">Verify my email</a></p>
<p>If you did not create an account you can ignore this message.</p>`))

	resetTemplate = template.Must(template.New("reset").Parse(`<p>Hi {{.Name}},</p>
<p>We received a request to reset your RecipeHub password. The link below is valid for 30 minutes and can be used once:</p>
<p><a href="{{.Link}}">Reset my password</a></p>
<p>If you did not ask for a reset you can ignore this message.</p>`))
)

type linkMail struct {
	Name string
	Link string
}

func VerificationBody(name, link string) (string, error) {
	return render(verificationTemplate, linkMail{Name: name, Link: link})
}

func ResetPasswordBody(name, link string) (string, error) {
	return render(resetTemplate, linkMail{Name: name, Link: link})
}

func render(t *template.Template, data linkMail) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
