package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

var layout = template.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html><body style="font-family:Arial,sans-serif;color:#222">
<h2>{{.Title}}</h2>
{{range .Paragraphs}}<p>{{.}}</p>
{{end}}<p style="color:#888;font-size:12px">{{.Footer}}</p>
</body></html>`))

type page struct {
	Title      string
	Paragraphs []string
	Footer     string
}

func render(to, toName, subject string, p page) Message {
	if p.Footer == "" {
		p.Footer = "Academy"
	}
	var buf bytes.Buffer
	if err := layout.Execute(&buf, p); err != nil {
		// template is static; only a writer failure could land here
		buf.Reset()
	}
	text := p.Title + "\n\n" + strings.Join(p.Paragraphs, "\n\n")
	return Message{To: to, ToName: toName, Subject: subject, Text: text, HTML: buf.String()}
}

func Welcome(to, name string) Message {
	return render(to, name, "Bienvenue à l'Académie", page{
		Title: fmt.Sprintf("Bienvenue %s", name),
		Paragraphs: []string{
			"Votre compte a été créé avec succès.",
			"Vous pouvez dès maintenant vous connecter à votre espace membre.",
		},
	})
}

func MembershipReceived(to, name string) Message {
	return render(to, name, "Demande d'adhésion reçue", page{
		Title: fmt.Sprintf("Merci %s", name),
		Paragraphs: []string{
			"Nous avons bien reçu votre demande d'adhésion.",
			"Elle sera examinée par notre équipe dans les plus brefs délais.",
		},
	})
}

func MembershipApproved(to, name string) Message {
	return render(to, name, "Adhésion approuvée", page{
		Title: fmt.Sprintf("Félicitations %s", name),
		Paragraphs: []string{
			"Votre demande d'adhésion a été approuvée.",
			"Connectez-vous avec l'email et le mot de passe choisis lors de votre demande.",
		},
	})
}

func MembershipRejected(to, name, reason string) Message {
	paragraphs := []string{"Votre demande d'adhésion n'a pas été retenue."}
	if reason != "" {
		paragraphs = append(paragraphs, "Motif : "+reason)
	}
	return render(to, name, "Demande d'adhésion", page{
		Title:      fmt.Sprintf("Bonjour %s", name),
		Paragraphs: paragraphs,
	})
}

func LeadConfirmation(to, name string) Message {
	return render(to, name, "Nous avons bien reçu votre demande", page{
		Title: fmt.Sprintf("Merci %s", name),
		Paragraphs: []string{
			"Votre demande a bien été enregistrée.",
			"Un membre de l'équipe vous recontactera rapidement.",
		},
	})
}

// LeadAlert notifies the academy inbox about a new lead.
func LeadAlert(to string, lead LeadSummary) Message {
	return render(to, "", "Nouveau prospect : "+lead.FullName, page{
		Title: "Nouveau prospect",
		Paragraphs: []string{
			"Nom : " + lead.FullName,
			"Email : " + lead.Email,
			"Téléphone : " + lead.Phone,
			"Profil : " + lead.PersonType,
			"Localisation : " + strings.Trim(lead.City+", "+lead.Country, ", "),
			"Motivations : " + strings.Join(lead.Motivations, ", "),
		},
	})
}

type LeadSummary struct {
	FullName    string
	Email       string
	Phone       string
	PersonType  string
	City        string
	Country     string
	Motivations []string
}

func PaymentReceived(to, name, description string) Message {
	return render(to, name, "Paiement confirmé", page{
		Title: fmt.Sprintf("Merci %s", name),
		Paragraphs: []string{
			"Nous avons bien reçu votre paiement.",
			description,
		},
	})
}
