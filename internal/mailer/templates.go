package mailer

import (
	"fmt"
	"time"

	"memberdesk/internal/domain"
)

// The club corresponds with applicants in Finnish.
const (
	pendingSubject  = "Jäsenhakemuksesi on vastaanotettu - Speedcubing Finland"
	approvedSubject = "Tervetuloa jäseneksi! - Speedcubing Finland"
	contactAddress  = "hallitus@speedcubingfinland.fi"
)

func wcaIDOrDash(id *string) string {
	if id == nil || *id == "" {
		return "-"
	}
	return *id
}

func pendingText(sub *domain.Submission) string {
	return fmt.Sprintf(`Hei %s!

Kiitos jäsenhakemuksestasi Speedcubing Finland ry:hyn!

Olemme vastaanottaneet hakemuksesi ja se odottaa nyt hallituksen hyväksyntää.
Saat uuden sähköpostin, kun hakemuksesi on käsitelty.

Hakemuksen tiedot:
- Nimi: %s %s
- Kaupunki: %s
- Sähköposti: %s
- WCA ID: %s
- Syntymäaika: %s

Jos sinulla on kysyttävää, ota yhteyttä osoitteeseen %s.

Ystävällisin terveisin,
Speedcubing Finland ry
`,
		sub.FirstName,
		sub.FirstName, sub.LastName,
		sub.City,
		sub.Email,
		wcaIDOrDash(sub.WCAID),
		sub.BirthDate,
		contactAddress,
	)
}

func pendingHTML(sub *domain.Submission) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h1>Speedcubing Finland</h1>
  <h2>Hei %s!</h2>
  <p>Kiitos jäsenhakemuksestasi <strong>Speedcubing Finland ry</strong>:hyn!</p>
  <p>Olemme vastaanottaneet hakemuksesi ja se odottaa nyt hallituksen hyväksyntää.
     Saat uuden sähköpostin, kun hakemuksesi on käsitelty.</p>
  <p><strong>Hakemuksen tiedot:</strong></p>
  <ul>
    <li><strong>Nimi:</strong> %s %s</li>
    <li><strong>Kaupunki:</strong> %s</li>
    <li><strong>Sähköposti:</strong> %s</li>
    <li><strong>WCA ID:</strong> %s</li>
    <li><strong>Syntymäaika:</strong> %s</li>
  </ul>
  <p>Jos sinulla on kysyttävää, ota yhteyttä osoitteeseen
     <a href="mailto:%s">%s</a>.</p>
  <p>Ystävällisin terveisin,<br><strong>Speedcubing Finland ry</strong></p>
  <p style="color: #9ca3af; font-size: 12px;">© %d Speedcubing Finland ry —
     Tämä on automaattinen viesti, älä vastaa tähän sähköpostiin.</p>
</body>
</html>`,
		sub.FirstName,
		sub.FirstName, sub.LastName,
		sub.City,
		sub.Email,
		wcaIDOrDash(sub.WCAID),
		sub.BirthDate,
		contactAddress, contactAddress,
		time.Now().Year(),
	)
}

func approvedText(firstName string) string {
	return fmt.Sprintf(`Hei %s!

Hienoja uutisia! Jäsenhakemuksesi Speedcubing Finland ry:hyn on hyväksytty!
Olet nyt virallisesti Suomen speedcubing-yhteisön jäsen.

Jäsenenä:
- Saat äänioikeuden yhdistyksen kokouksissa
- Saat alennuksia kilpailumaksuista
- Pääset tutustumaan aktiiviseen speedcubing-yhteisöön

Jos sinulla on kysyttävää, ota yhteyttä osoitteeseen %s.

Ystävällisin terveisin,
Speedcubing Finland ry
`, firstName, contactAddress)
}

func approvedHTML(firstName string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h1>Tervetuloa jäseneksi!</h1>
  <h2>Hei %s!</h2>
  <p>Hienoja uutisia! Jäsenhakemuksesi <strong>Speedcubing Finland ry</strong>:hyn
     on hyväksytty! Olet nyt virallisesti Suomen speedcubing-yhteisön jäsen.</p>
  <p><strong>Jäsenenä:</strong></p>
  <ul>
    <li>Saat äänioikeuden yhdistyksen kokouksissa</li>
    <li>Saat alennuksia kilpailumaksuista</li>
    <li>Pääset tutustumaan aktiiviseen speedcubing-yhteisöön</li>
  </ul>
  <p>Jos sinulla on kysyttävää, ota yhteyttä osoitteeseen
     <a href="mailto:%s">%s</a>.</p>
  <p>Ystävällisin terveisin,<br><strong>Speedcubing Finland ry</strong></p>
  <p style="color: #9ca3af; font-size: 12px;">© %d Speedcubing Finland ry —
     Tämä on automaattinen viesti, älä vastaa tähän sähköpostiin.</p>
</body>
</html>`, firstName, contactAddress, contactAddress, time.Now().Year())
}
