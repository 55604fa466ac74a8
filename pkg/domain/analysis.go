package domain

import "time"

// Analysis is a job row owned by a user
type Analysis struct {
	ID               string     `db:"id" json:"id"`
	Name             string     `db:"name" json:"name"`
	Description      string     `db:"description" json:"description"`
	AppID            string     `db:"app_id" json:"app_id"`
	AppName          string     `db:"app_name" json:"app_name"`
	AppDescription   string     `db:"app_description" json:"app_description"`
	ResultFolderPath string     `db:"result_folder_path" json:"result_folder_path"`
	StartDate        *time.Time `db:"start_date" json:"start_date"`
	EndDate          *time.Time `db:"end_date" json:"end_date"`
	PlannedEndDate   *time.Time `db:"planned_end_date" json:"planned_end_date"`
	Status           string     `db:"status" json:"status"`
	Subdomain        *string    `db:"subdomain" json:"subdomain"`
	ParentID         *string    `db:"parent_id" json:"parent_id"`
	Username         string     `db:"username" json:"username"`
}

// AnalysisStatusRunning is the job status of an analysis in progress
const AnalysisStatusRunning = "Running"
