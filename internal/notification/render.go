package notification

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/albertsama/portfolio-api/internal/models"
)

// Notification carries the two representations of one submission: a
// styled HTML document and a plain-text fallback. Both are built from
// the same timestamp, sampled once per Render call.
type Notification struct {
	HTML string
	Text string
}

// defaultReplySubject is used in the reply mailto link when the
// submitter left the subject blank.
const defaultReplySubject = "Votre message"

// Render produces the owner notification for an accepted submission.
// Every field interpolated into the HTML goes through Escape; the
// plain-text form stays raw (it is not markup). Blank optional fields
// render as an em-dash.
func Render(req *models.ContactRequest, now time.Time) *Notification {
	receivedAt := now.Format("02/01/2006 15:04:05")

	return &Notification{
		HTML: renderHTML(req, receivedAt, now.Year()),
		Text: renderText(req, receivedAt),
	}
}

func renderText(req *models.ContactRequest, receivedAt string) string {
	var b strings.Builder
	b.WriteString("Nouveau message depuis le site\n")
	b.WriteString("-----------------------------\n")
	fmt.Fprintf(&b, "Nom: %s\n", req.Name)
	fmt.Fprintf(&b, "Email: %s\n", req.Email)
	fmt.Fprintf(&b, "Téléphone: %s\n", req.Phone)
	fmt.Fprintf(&b, "Sujet: %s\n", req.Subject)
	fmt.Fprintf(&b, "Budget: %s\n", req.Budget)
	b.WriteString("\nMessage:\n")
	b.WriteString(req.Message)
	b.WriteString("\n\nReçu le: ")
	b.WriteString(receivedAt)
	b.WriteString("\n")
	return b.String()
}

func renderHTML(req *models.ContactRequest, receivedAt string, year int) string {
	return fmt.Sprintf(htmlLayout,
		Escape(req.Name),
		Escape(req.Email),
		orDash(Escape(req.Phone)),
		orDash(Escape(req.Subject)),
		orDash(Escape(req.Budget)),
		Escape(req.Message),
		replySubjectParam(req.Subject),
		receivedAt,
		year,
	)
}

// orDash renders blank optional fields as an em-dash placeholder.
func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}

// replySubjectParam percent-encodes the original subject for the reply
// mailto link. QueryEscape emits "+" for spaces, which mail clients do
// not decode inside mailto URLs, so spaces become %%20.
func replySubjectParam(subject string) string {
	if strings.TrimSpace(subject) == "" {
		subject = defaultReplySubject
	}
	return strings.ReplaceAll(url.QueryEscape(subject), "+", "%20")
}

// htmlLayout is the fixed notification document. Inlined styles plus a
// <style> block, table-based structure: the usual concessions to email
// client rendering. Placeholders, in order:
//
//	%[1]s escaped sender name
//	%[2]s escaped sender email
//	%[3]s escaped phone or em-dash
//	%[4]s escaped subject or em-dash
//	%[5]s escaped budget or em-dash
//	%[6]s escaped message body
//	%[7]s percent-encoded reply subject
//	%[8]s received-at timestamp (server local time)
//	%[9]d current year
const htmlLayout = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width">
  <title>Nouveau Message - Portfolio</title>
  <style>
    html,body{margin:0;padding:0;height:100%%;}
    img{border:0;display:block;outline:none;text-decoration:none;}
    a{x-apple-data-detectors:none; color:inherit; text-decoration:none;}
    body {
      background-color: #eef2f7;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
      -webkit-font-smoothing:antialiased;
      -moz-osx-font-smoothing:grayscale;
      color: #111827;
    }
    .container { max-width:600px; margin:0 auto; }
    .header { padding:28px 24px; color:#fff; text-align:center; border-radius:12px 12px 0 0; }
    .header h1 { margin:0; font-size:20px; font-weight:800; letter-spacing:-0.4px; }
    .header p { margin:6px 0 0; opacity:0.95; font-size:14px; }
    .content { padding:32px 28px; background:#ffffff; border-left:1px solid rgba(15,23,42,0.04); border-right:1px solid rgba(15,23,42,0.04); }
    .content h2 { font-size:18px; margin:0 0 16px 0; color:#0f172a; font-weight:700; }
    .info-table { width:100%%; border-collapse:collapse; margin-bottom:22px; }
    .info-table th, .info-table td { text-align:left; padding:12px 10px; font-size:14px; vertical-align:top; }
    .info-table th { color:#4b5563; font-weight:700; width:140px; background:#fbfdff; border-radius:4px; }
    .info-table td { color:#111827; }
    .message-box { background:#f8fafc; padding:16px; border-radius:8px; white-space:pre-wrap; font-family:monospace; font-size:14px; color:#0f172a; border-left:4px solid #2563eb; box-shadow: inset 0 1px 2px rgba(2,6,23,0.03); margin-bottom:20px; }
    .button { display:inline-block; text-decoration:none; font-weight:700; border-radius:8px; box-shadow:0 6px 18px rgba(59,130,246,0.18); }
    .footer { padding:20px 28px; text-align:center; font-size:13px; color:#6b7280; background:#fbfdff; border-radius:0 0 12px 12px; border-top:1px solid rgba(15,23,42,0.04); }
    @media screen and (max-width:600px) {
      .content { padding:20px; }
      .header { padding:22px 18px; border-radius:0; }
      .footer { padding:18px; }
      .info-table th, .info-table td { display:block; width:100%%; box-sizing:border-box; padding:10px 0; border-bottom:none; }
      .container { width:100%% !important; }
    }
  </style>
</head>
<body style="margin:0; padding:24px 0; background-color:#eef2f7;">
  <table role="presentation" width="100%%" cellpadding="0" cellspacing="0" style="background-color:transparent;">
    <tr>
      <td align="center">
        <table role="presentation" class="container" width="600" cellpadding="0" cellspacing="0" style="max-width:600px; width:100%%; margin:0 auto;">
          <tr>
            <td style="padding:0;">
              <div class="header" style="background:linear-gradient(135deg,#0f172a 0%%,#2563eb 100%%);">
                <div style="display:flex;align-items:center;justify-content:center;gap:12px;flex-wrap:wrap;">
                  <div aria-hidden="true" style="display:flex;align-items:center;gap:10px;">
                    <svg width="48" height="48" viewBox="0 0 64 64" fill="none" xmlns="http://www.w3.org/2000/svg" role="img" aria-label="Logo">
                      <defs>
                        <linearGradient id="g1" x1="0" x2="1">
                          <stop offset="0" stop-color="#34d399" />
                          <stop offset="1" stop-color="#2563eb" />
                        </linearGradient>
                      </defs>
                      <rect x="4" y="4" width="56" height="56" rx="12" fill="url(#g1)" opacity="0.95"/>
                      <path d="M20 42 L32 18 L44 42 H37 L32 30 L27 42 Z" fill="white" opacity="0.95"/>
                    </svg>
                    <div style="text-align:left;">
                      <div style="font-weight:800; font-size:16px; color:#ffffff; line-height:1;">Albert Sama</div>
                      <div style="font-size:12px; color:rgba(255,255,255,0.85); line-height:1;">Portfolio · Contact</div>
                    </div>
                  </div>
                </div>
                <div style="margin-top:12px;">
                  <h1 style="margin:0; font-size:20px; font-weight:800; color:#fff;">Nouveau message</h1>
                  <p style="margin:6px 0 0; font-size:13px; color:rgba(255,255,255,0.92);">Reçu de <strong style="color:#fff">%[1]s</strong></p>
                </div>
              </div>
              <div class="content" style="background:#ffffff;">
                <h2>Détails du contact</h2>
                <table class="info-table" role="presentation" cellpadding="0" cellspacing="0" style="width:100%%;">
                  <tr>
                    <th>Nom</th>
                    <td>%[1]s</td>
                  </tr>
                  <tr>
                    <th>Email</th>
                    <td><a href="mailto:%[2]s" style="color:#2563eb; text-decoration:none;">%[2]s</a></td>
                  </tr>
                  <tr>
                    <th>Téléphone</th>
                    <td>%[3]s</td>
                  </tr>
                  <tr>
                    <th>Sujet</th>
                    <td>%[4]s</td>
                  </tr>
                  <tr>
                    <th>Budget</th>
                    <td>%[5]s</td>
                  </tr>
                </table>
                <h2>Message</h2>
                <div class="message-box">%[6]s</div>
                <table role="presentation" cellpadding="0" cellspacing="0" style="margin-top:6px;">
                  <tr>
                    <td align="left">
                      <table role="presentation" cellpadding="0" cellspacing="0">
                        <tr>
                          <td style="border-radius:8px; background:linear-gradient(90deg,#2563eb,#60a5fa);">
                            <a href="mailto:%[2]s?subject=Re:%%20%[7]s" class="button" style="display:inline-block;padding:12px 22px;font-size:14px;font-weight:700;color:#ffffff;text-decoration:none;border-radius:8px;">
                              ✉️ Répondre au message
                            </a>
                          </td>
                        </tr>
                      </table>
                    </td>
                    <td align="right" style="padding-left:12px; vertical-align:middle;">
                      <div style="font-size:13px;color:#6b7280;">Reçu le<br><strong style="color:#111827;">%[8]s</strong></div>
                    </td>
                  </tr>
                </table>
              </div>
              <div class="footer" style="background:#fbfdff;">
                <div style="display:flex;align-items:center;justify-content:center;gap:8px; margin-bottom:6px;">
                  <svg width="20" height="20" viewBox="0 0 64 64" fill="none" xmlns="http://www.w3.org/2000/svg" aria-hidden="true">
                    <defs>
                      <linearGradient id="g2" x1="0" x2="1">
                        <stop offset="0" stop-color="#34d399" />
                        <stop offset="1" stop-color="#2563eb" />
                      </linearGradient>
                    </defs>
                    <rect x="6" y="6" width="52" height="52" rx="10" fill="url(#g2)" opacity="0.95"/>
                    <path d="M22 44 L32 24 L42 44 H36 L32 34 L28 44 Z" fill="white" opacity="0.95"/>
                  </svg>
                  <div style="font-size:13px; color:#6b7280;">Ce message a été envoyé depuis ton portfolio.</div>
                </div>
                <div style="font-size:12px; color:#9aa3b2;">&copy; %[9]d Albert Sama. Tous droits réservés.</div>
              </div>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`
