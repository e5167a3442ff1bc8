package views

import (
	"fmt"
	"strconv"

	"xhsdash/internal/api"
)

// EmptyTasksMessage is the placeholder for an empty listing, distinct from
// the loading state.
const EmptyTasksMessage = "No tasks found. Wait for new comments or run poll manually."

// TaskListHeader is the task table header row.
var TaskListHeader = []string{"ID", "Type", "Status", "Email", "Confidence", "Created", "Details"}

// TaskRows builds list rows in response order; the backend owns ordering and
// nothing is re-sorted here.
func TaskRows(tasks []api.Task, colorize bool) [][]string {
	rows := make([][]string, 0, len(tasks))
	for _, task := range tasks {
		rows = append(rows, []string{
			strconv.FormatInt(task.ID, 10),
			RequestTypeCell(task.RequestType),
			StatusBadge(task.Status).Render(colorize),
			OrDash(task.Email),
			FormatConfidence(task.Confidence),
			FormatTimestamp(task.CreatedAt),
			fmt.Sprintf("tasks show %d", task.ID),
		})
	}
	return rows
}

// Section is one titled block of the task detail view.
type Section struct {
	Title string
	// Fields are label/value pairs rendered as aligned lines.
	Fields []Field
}

// Field is one label/value line in a detail section.
type Field struct {
	Label string
	Value string
}

// TaskDetailSections builds the detail view for one task snapshot. The
// comment and deliveries sections appear only when their data is present;
// either one's absence leaves the rest of the layout untouched.
func TaskDetailSections(task *api.Task, colorize bool) []Section {
	sections := []Section{
		{
			Title: "Status",
			Fields: []Field{
				{"Status", StatusBadge(task.Status).Render(colorize)},
				{"Created", FormatTimestamp(task.CreatedAt)},
				{"Updated", FormatTimestamp(task.UpdatedAt)},
			},
		},
	}

	request := Section{
		Title: "Request",
		Fields: []Field{
			{"Type", RequestTypeLabel(task.RequestType)},
			{"Email", OrDash(task.Email)},
			{"Prompt", OrDash(task.Prompt)},
			{"Confidence", FormatConfidenceDetail(task.Confidence)},
			{"Retry count", strconv.Itoa(task.RetryCount)},
		},
	}
	sections = append(sections, request)

	provider := Section{
		Title: "Provider",
		Fields: []Field{
			{"Provider", OrDash(task.ProviderName)},
			{"Job ID", OrDash(task.ProviderJobID)},
			{"Result URL", OrDash(task.ResultURL)},
		},
	}
	if task.Error != nil && *task.Error != "" {
		provider.Fields = append(provider.Fields, Field{"Error", *task.Error})
	}
	sections = append(sections, provider)

	if task.Comment != nil {
		sections = append(sections, Section{
			Title: "Original Comment",
			Fields: []Field{
				{"User", OrDash(task.Comment.UserName)},
				{"Comment UID", task.Comment.CommentUID},
				{"Content", task.Comment.Content},
				{"Posted", FormatOptTimestamp(task.Comment.CommentCreatedAt)},
				{"Ingested", FormatTimestamp(task.Comment.IngestedAt)},
			},
		})
	}

	if len(task.Deliveries) > 0 {
		deliveries := Section{Title: "Email Deliveries"}
		for i, delivery := range task.Deliveries {
			prefix := fmt.Sprintf("#%d ", i+1)
			deliveries.Fields = append(deliveries.Fields,
				Field{prefix + "To", delivery.EmailTo},
				Field{prefix + "Status", DeliveryBadge(delivery.Status).Render(colorize)},
				Field{prefix + "Sent at", FormatOptTimestamp(delivery.SentAt)},
			)
			if delivery.Error != nil && *delivery.Error != "" {
				deliveries.Fields = append(deliveries.Fields, Field{prefix + "Error", *delivery.Error})
			}
		}
		sections = append(sections, deliveries)
	}

	return sections
}
