package service

import (
	"fmt"

	"jirao/internal/db"
	"jirao/internal/entities"
)

// Notifier delivers lifecycle notifications. Implementations are called in
// their own goroutines after the store mutation has committed, never while a
// store lock is held.
type Notifier interface {
	InterestReceived(view *entities.InterestView, ownerEmail, ownerName string)
	InterestAnswered(view *entities.InterestView, guestPhone string)
	HostApplicationResolved(email, username string, approved bool)
}

// NotifyService sends emails through SendGrid and SMS through Twilio, with
// credentials read from the environment.
type NotifyService struct{}

func NewNotifyService() *NotifyService {
	return &NotifyService{}
}

func (n *NotifyService) InterestReceived(view *entities.InterestView, ownerEmail, ownerName string) {
	subject := fmt.Sprintf("New interest in %s", view.SpaceTitle)
	body := fmt.Sprintf(
		"Hi %s,\n\n%s has expressed interest in your listing %q (%s).\n\n"+
			"Log in to JIRAO to accept or reject the request.\n",
		ownerName, view.UserName, view.SpaceTitle, view.SpaceLocation)
	if view.HoursRequested != nil {
		body += fmt.Sprintf("\nRequested duration: %d hours.\n", *view.HoursRequested)
	}
	SendEmailWithSendGrid(ownerEmail, ownerName, subject, body)
}

func (n *NotifyService) InterestAnswered(view *entities.InterestView, guestPhone string) {
	subject := fmt.Sprintf("Your interest in %s was %s", view.SpaceTitle, view.Status)
	body := fmt.Sprintf(
		"Hi %s,\n\nThe host has %s your interest in %q (%s, $%.2f/hour).\n",
		view.UserName, view.Status, view.SpaceTitle, view.SpaceLocation, view.SpaceRate)
	SendEmailWithSendGrid(view.UserEmail, view.UserName, subject, body)

	if view.Status == db.InterestAccepted && guestPhone != "" {
		SendSMS(guestPhone, fmt.Sprintf("JIRAO: your request for %q was accepted.", view.SpaceTitle))
	}
}

func (n *NotifyService) HostApplicationResolved(email, username string, approved bool) {
	if approved {
		body := fmt.Sprintf(
			"Hi %s,\n\nYour host application has been approved. You can now log in and create listings.\n",
			username)
		SendEmailWithSendGrid(email, username, "Host application approved", body)
		return
	}
	body := fmt.Sprintf("Hi %s,\n\nYour host application has been rejected.\n", username)
	SendEmailWithSendGrid(email, username, "Host application rejected", body)
}

// NopNotifier discards every notification. Used by tests.
type NopNotifier struct{}

func (NopNotifier) InterestReceived(*entities.InterestView, string, string) {}
func (NopNotifier) InterestAnswered(*entities.InterestView, string)         {}
func (NopNotifier) HostApplicationResolved(string, string, bool)            {}
