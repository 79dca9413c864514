package export

import (
	"testing"
	"time"

	"github.com/dmikh/job-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationsXML(t *testing.T) {
	t.Parallel()

	applied := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	user := &models.User{Username: "alice"}
	jobs := []*models.JobApplication{
		{
			ID:          1,
			CompanyName: "Acme",
			JobTitle:    "Backend Engineer",
			Status:      models.StatusInterview,
			Location:    "Berlin",
			AppliedDate: &applied,
			Notes:       "referred by Bob",
		},
		{
			ID:          2,
			CompanyName: "Globex",
			JobTitle:    "SRE",
			Status:      models.StatusApplied,
		},
	}

	doc := ApplicationsXML(user, jobs)

	root := doc.SelectElement("JobApplications")
	require.NotNil(t, root)
	assert.Equal(t, "alice", root.SelectAttrValue("username", ""))
	assert.Equal(t, "2", root.SelectAttrValue("count", ""))

	apps := root.SelectElements("Application")
	require.Len(t, apps, 2)

	first := apps[0]
	assert.Equal(t, "1", first.SelectAttrValue("id", ""))
	assert.Equal(t, "Acme", first.SelectElement("Company").Text())
	assert.Equal(t, "interview", first.SelectElement("Status").Text())
	assert.Equal(t, "2026-08-01", first.SelectElement("AppliedDate").Text())
	assert.Equal(t, "referred by Bob", first.SelectElement("Notes").Text())

	// Optional fields are omitted when empty
	second := apps[1]
	assert.Nil(t, second.SelectElement("Location"))
	assert.Nil(t, second.SelectElement("AppliedDate"))
	assert.Nil(t, second.SelectElement("Notes"))
}

func TestApplicationsXML_Empty(t *testing.T) {
	t.Parallel()

	doc := ApplicationsXML(&models.User{Username: "bob"}, nil)

	root := doc.SelectElement("JobApplications")
	require.NotNil(t, root)
	assert.Equal(t, "0", root.SelectAttrValue("count", ""))
	assert.Empty(t, root.SelectElements("Application"))
}
