package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"roi-srv/internal/calculator"
	"roi-srv/internal/proposal"
	"roi-srv/pkg/email"
	"roi-srv/pkg/pdf"
)

// Generate runs the calculation, renders the proposal PDF and optionally
// mails it out. Flow: validate → calculate → project → render → dispatch.
func (uc *implUseCase) Generate(ctx context.Context, input proposal.GenerateInput) (proposal.GenerateOutput, error) {
	if input.Email != nil && strings.TrimSpace(input.Email.Recipient) == "" {
		return proposal.GenerateOutput{}, proposal.ErrEmailRecipient
	}
	if uc.renderer == nil {
		return proposal.GenerateOutput{}, proposal.ErrRendererUnavailable
	}

	res, err := uc.calcUC.Calculate(ctx, input.Calculation)
	if err != nil {
		uc.l.Errorf(ctx, "proposal.usecase.Generate: Calculate failed: %v", err)
		return proposal.GenerateOutput{}, err
	}

	projection, err := uc.calcUC.MonthlyProjection(ctx, input.Calculation, 12)
	if err != nil {
		uc.l.Errorf(ctx, "proposal.usecase.Generate: MonthlyProjection failed: %v", err)
		return proposal.GenerateOutput{}, err
	}

	generatedAt := time.Now()
	title := input.Title
	if title == "" {
		title = defaultTitle
	}
	preparedBy := input.PreparedBy
	if preparedBy == "" {
		preparedBy = uc.config.DefaultPreparedBy
	}
	contactEmail := input.ContactEmail
	if contactEmail == "" {
		contactEmail = uc.config.DefaultContactEmail
	}

	doc := pdf.Document{
		Title:    title,
		Subtitle: buildSubtitle(input.PreparedFor, preparedBy, generatedAt),
		Markdown: buildMarkdown(res, projection),
		Badges:   buildBadges(res),
	}
	pdfBytes, err := uc.renderer.Render(ctx, doc)
	if err != nil {
		uc.l.Errorf(ctx, "proposal.usecase.Generate: Render failed: %v", err)
		return proposal.GenerateOutput{}, err
	}

	out := proposal.GenerateOutput{
		ProposalID:  uuid.NewString(),
		GeneratedAt: generatedAt,
		Title:       title,
		Results:     res,
		PDF:         pdfBytes,
	}

	if input.Email != nil {
		out.EmailRequested = true
		if err := uc.dispatchEmail(ctx, input, *input.Email, res, pdfBytes, preparedBy, contactEmail, generatedAt); err != nil {
			out.EmailError = err.Error()
		} else {
			out.EmailDelivered = true
		}
	}

	return out, nil
}

func (uc *implUseCase) dispatchEmail(
	ctx context.Context,
	input proposal.GenerateInput,
	req proposal.EmailRequest,
	res *calculator.UnifiedResults,
	pdfBytes []byte,
	preparedBy, contactEmail string,
	generatedAt time.Time,
) error {
	if uc.sender == nil {
		uc.l.Warn(ctx, "proposal.usecase.dispatchEmail: no smtp sender configured")
		return fmt.Errorf("smtp sender not configured")
	}

	recipientName := req.RecipientName
	if recipientName == "" {
		recipientName = req.Recipient
	}

	msg, err := email.NewEmail(email.EmailMeta{
		Recipient:    req.Recipient,
		CC:           req.CC,
		TemplateType: email.ProposalTemplate,
	}, email.ProposalData{
		RecipientName: recipientName,
		PropertyNames: propertyLabel(input.PreparedFor, res),
		Scenario:      string(res.RiskScenario),
		MonthlyUplift: money(res.Totals.MonthlyUplift),
		AnnualUplift:  money(res.Totals.AnnualUplift),
		PaybackMonths: paybackLabel(res.ROIAnalysis.FullContract.PaybackMonths),
		PreparedDate:  generatedAt.Format("January 2, 2006"),
		SenderName:    preparedBy,
		SenderEmail:   contactEmail,
	})
	if err != nil {
		uc.l.Errorf(ctx, "proposal.usecase.dispatchEmail: NewEmail failed: %v", err)
		return err
	}

	msg.Attachments = append(msg.Attachments, email.Attachment{
		Filename:    "proposal.pdf",
		ContentType: "application/pdf",
		Data:        pdfBytes,
	})

	return uc.sender.Send(ctx, msg)
}
