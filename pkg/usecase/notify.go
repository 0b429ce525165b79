package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/usher/pkg/domain/interfaces"
	"github.com/m-mizutani/usher/pkg/domain/model"
	"github.com/m-mizutani/usher/pkg/utils/errutil"
	"github.com/m-mizutani/usher/pkg/utils/logging"
)

// maxListedRepoNames bounds the repository names spelled out in
// notification messages; the remainder is summarized as a count.
const maxListedRepoNames = 5

// notifyIntake sends the user-facing confirmation and the internal copy to
// the operations address. Both sends are best-effort: failures are reported
// and swallowed since the submission has already succeeded.
func (x *UseCase) notifyIntake(ctx context.Context, sub *model.IntakeSubmission, queueNumber *int) {
	notifier := x.clients.Notifier()
	if notifier == nil {
		logging.From(ctx).Warn("notifier is not configured, skipping intake notifications")
		return
	}

	repoNames := formatRepoNames(sub.Repos)

	data := map[string]any{
		"name":         sub.Name,
		"githubHandle": sub.GitHubHandle,
		"repoNames":    repoNames,
	}
	if queueNumber != nil {
		data["queueNumber"] = *queueNumber
	}

	userMail := &interfaces.TemplatedMail{
		To:         sub.Email,
		TemplateID: x.intakeTemplateID,
		Data:       data,
	}
	if err := notifier.SendTemplated(ctx, userMail); err != nil {
		errutil.HandleError(ctx, "failed to send intake confirmation", err)
	}

	opsMail := &interfaces.PlainMail{
		To:      x.opsAddress,
		Subject: fmt.Sprintf("New intake: %s (@%s)", sub.Name, sub.GitHubHandle),
		Body:    buildOpsMailBody(sub, repoNames),
	}
	if err := notifier.SendPlain(ctx, opsMail); err != nil {
		errutil.HandleError(ctx, "failed to send internal intake notification", err)
	}
}

func buildOpsMailBody(sub *model.IntakeSubmission, repoNames string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New intake submission\n\n")
	fmt.Fprintf(&b, "Name: %s\n", sub.Name)
	fmt.Fprintf(&b, "Email: %s\n", sub.Email)
	fmt.Fprintf(&b, "GitHub: @%s\n", sub.GitHubHandle)
	fmt.Fprintf(&b, "Wants design help: %t\n", sub.ShouldDesign)
	fmt.Fprintf(&b, "One project per repo: %t\n", sub.IsOneProjectPerRepo)
	fmt.Fprintf(&b, "Repositories: %s\n", repoNames)
	fmt.Fprintf(&b, "Images: %d\n", len(sub.Images))
	if sub.Notes != "" {
		fmt.Fprintf(&b, "\nNotes:\n%s\n", sub.Notes)
	}
	return b.String()
}

// formatRepoNames renders the selected repository names as one readable
// list. Up to maxListedRepoNames names are spelled out; with two or more
// names the last spelled-out one is prefixed with "and", and anything past
// the bound becomes "and K more".
func formatRepoNames(repos []model.Repository) string {
	names := make([]string, len(repos))
	for i, repo := range repos {
		names[i] = repo.ShortName()
	}

	switch {
	case len(names) == 0:
		return ""
	case len(names) == 1:
		return names[0]
	case len(names) <= maxListedRepoNames:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	default:
		return strings.Join(names[:maxListedRepoNames], ", ") +
			fmt.Sprintf(", and %d more", len(names)-maxListedRepoNames)
	}
}
