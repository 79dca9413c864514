// Package export renders a user's job applications as an XML report.
package export

import (
	"fmt"
	"time"

	"github.com/beevik/etree"
	"github.com/dmikh/job-tracker/internal/models"
)

// ApplicationsXML builds an XML document listing all of the user's job
// applications
func ApplicationsXML(user *models.User, jobs []*models.JobApplication) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("JobApplications")
	root.CreateAttr("username", user.Username)
	root.CreateAttr("exported_at", time.Now().UTC().Format(time.RFC3339))
	root.CreateAttr("count", fmt.Sprintf("%d", len(jobs)))

	for _, job := range jobs {
		el := root.CreateElement("Application")
		el.CreateAttr("id", fmt.Sprintf("%d", job.ID))
		el.CreateElement("Company").SetText(job.CompanyName)
		el.CreateElement("Title").SetText(job.JobTitle)
		el.CreateElement("Status").SetText(string(job.Status))
		if job.JobURL != "" {
			el.CreateElement("URL").SetText(job.JobURL)
		}
		if job.Location != "" {
			el.CreateElement("Location").SetText(job.Location)
		}
		if job.SalaryRange != "" {
			el.CreateElement("SalaryRange").SetText(job.SalaryRange)
		}
		addDate(el, "AppliedDate", job.AppliedDate)
		addDate(el, "InterviewDate", job.InterviewDate)
		addDate(el, "FollowUpDate", job.FollowUpDate)
		if job.Notes != "" {
			el.CreateElement("Notes").SetText(job.Notes)
		}
		el.CreateElement("CreatedAt").SetText(job.CreatedAt.UTC().Format(time.RFC3339))
	}

	doc.Indent(2)
	return doc
}

func addDate(parent *etree.Element, name string, t *time.Time) {
	if t == nil {
		return
	}
	parent.CreateElement(name).SetText(t.UTC().Format("2006-01-02"))
}
