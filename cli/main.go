package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styling
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#0a84ff")).
			Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#30d158")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#ff453a")).
			Padding(0, 1)
)

// formField is one question in the plan profile form
type formField struct {
	key         string
	prompt      string
	placeholder string
}

var planForm = []formField{
	{key: "name", prompt: "Your name", placeholder: "optional"},
	{key: "weight", prompt: "Weight in kg", placeholder: "70"},
	{key: "height", prompt: "Height in cm", placeholder: "170"},
	{key: "age", prompt: "Age in years", placeholder: "30"},
	{key: "gender", prompt: "Gender (Male / Female / Other)", placeholder: "Female"},
	{key: "activity", prompt: "Activity level (Sedentary / Moderate / Active)", placeholder: "Moderate"},
	{key: "diet", prompt: "Dietary preference (Vegan / Vegetarian / Non-Vegetarian)", placeholder: "Vegetarian"},
	{key: "allergies", prompt: "Allergies, comma separated (Dairy, Nuts, Gluten, Soy)", placeholder: "none"},
	{key: "goal", prompt: "Goal (Lose Weight / Maintain Weight / Gain Weight)", placeholder: "Maintain Weight"},
	{key: "budget", prompt: "Budget level (Low / Medium / High)", placeholder: "Medium"},
	{key: "region", prompt: "Regional cuisine preference", placeholder: "Indian"},
}

// Model defines the application state
type Model struct {
	mainMenu   list.Model
	foodsTable table.Model
	inputField textinput.Model
	spinner    spinner.Model
	client     *ApiClient

	formIndex   int
	formAnswers map[string]string
	lastRequest *PlanRequest
	planResult  *PlanResponse
	notice      string
	guidance    *Guidance
	status      map[string]interface{}
	loading     bool
	currentView string
	error       string
}

// item represents a list item
type item struct {
	title, desc string
}

// FilterValue implements list.Item interface
func (i item) FilterValue() string { return i.title }

// Title implements list.Item interface
func (i item) Title() string { return i.title }

// Description implements list.Item interface
func (i item) Description() string { return i.desc }

// Initialize the model
func initialModel() Model {
	// Initialize spinner
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	// Initialize main menu items
	items := []list.Item{
		item{title: "Generate Plan", desc: "Build a full-day diet plan from your profile"},
		item{title: "Browse Foods", desc: "View the loaded food catalog"},
		item{title: "Exercise Advice", desc: "Exercise and hydration guidance by activity level"},
		item{title: "Server Status", desc: "Runtime counters of the planning server"},
		item{title: "Exit", desc: "Exit the application"},
	}

	// Initialize main menu
	mainMenu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	mainMenu.Title = "NutriPlan CLI"

	// Initialize foods view
	columns := []table.Column{
		{Title: "Food", Width: 22},
		{Title: "Diet", Width: 15},
		{Title: "Category", Width: 12},
		{Title: "Kcal/100g", Width: 10},
		{Title: "₹/100g", Width: 8},
	}
	foodsTable := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(14),
	)

	// Initialize text input
	ti := textinput.New()
	ti.CharLimit = 156
	ti.Width = 40

	// Initialize API client
	client := NewApiClient()

	return Model{
		mainMenu:    mainMenu,
		foodsTable:  foodsTable,
		inputField:  ti,
		spinner:     s,
		client:      client,
		formAnswers: map[string]string{},
		currentView: "main",
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tea.EnterAltScreen)
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.currentView != "form" {
				return m, tea.Quit
			}
		case "enter":
			if m.currentView == "main" {
				selected, ok := m.mainMenu.SelectedItem().(item)
				if ok {
					switch selected.title {
					case "Exit":
						return m, tea.Quit
					case "Generate Plan":
						m.currentView = "form"
						m.formIndex = 0
						m.formAnswers = map[string]string{}
						m.error = ""
						m.inputField.Placeholder = planForm[0].placeholder
						m.inputField.SetValue("")
						m.inputField.Focus()
						return m, nil
					case "Browse Foods":
						m.currentView = "foods"
						m.loading = true
						return m, fetchFoods(m.client)
					case "Exercise Advice":
						m.currentView = "advice"
						m.loading = true
						return m, fetchAdvice(m.client, "Moderate", 70)
					case "Server Status":
						m.currentView = "status"
						m.loading = true
						return m, fetchStatus(m.client)
					}
				}
			} else if m.currentView == "form" {
				m.formAnswers[planForm[m.formIndex].key] = strings.TrimSpace(m.inputField.Value())
				if m.formIndex+1 < len(planForm) {
					m.formIndex++
					m.inputField.Placeholder = planForm[m.formIndex].placeholder
					m.inputField.SetValue("")
					return m, nil
				}
				req, err := buildPlanRequest(m.formAnswers)
				if err != nil {
					m.error = err.Error()
					m.formIndex = 0
					m.inputField.Placeholder = planForm[0].placeholder
					m.inputField.SetValue("")
					return m, nil
				}
				m.lastRequest = req
				m.currentView = "plan"
				m.loading = true
				m.error = ""
				m.notice = ""
				return m, generatePlan(m.client, req)
			} else if m.currentView == "plan" || m.currentView == "advice" || m.currentView == "status" {
				m.currentView = "main"
				return m, nil
			}
		case "esc":
			if m.currentView != "main" {
				m.currentView = "main"
				m.error = ""
				m.notice = ""
				m.loading = false
			}
		case "s":
			if m.currentView == "plan" && m.planResult != nil && m.lastRequest != nil {
				return m, savePlan(m.client, m.lastRequest)
			}
		}
	case foodsMsg:
		m.loading = false
		m.foodsTable.SetRows(convertFoodsToRows(msg.foods))
		return m, nil
	case planMsg:
		m.loading = false
		m.planResult = msg.plan
		return m, nil
	case adviceMsg:
		m.loading = false
		m.guidance = msg.guidance
		return m, nil
	case statusMsg:
		m.loading = false
		m.status = msg.status
		return m, nil
	case savedMsg:
		m.notice = msg.path
		return m, nil
	case errorMsg:
		m.loading = false
		m.error = msg.err
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.currentView {
	case "main":
		m.mainMenu, cmd = m.mainMenu.Update(msg)
	case "foods":
		m.foodsTable, cmd = m.foodsTable.Update(msg)
	case "form":
		m.inputField, cmd = m.inputField.Update(msg)
	}

	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	switch m.currentView {
	case "main":
		return docStyle.Render(m.mainMenu.View())
	case "foods":
		if m.loading {
			return docStyle.Render(m.spinner.View() + " Loading catalog...")
		}
		help := "\nPress 'esc' to go back\n"
		if m.error != "" {
			help += errorStyle.Render(m.error) + "\n"
		}
		return docStyle.Render(titleStyle.Render("Food Catalog") + "\n\n" + m.foodsTable.View() + help)
	case "form":
		field := planForm[m.formIndex]
		view := titleStyle.Render("Generate Plan") + "\n\n"
		view += infoStyle.Render(fmt.Sprintf("Step %d of %d", m.formIndex+1, len(planForm))) + "\n\n"
		view += field.prompt + ":\n" + m.inputField.View() + "\n"
		view += "\nPress 'enter' to continue, 'esc' to cancel\n"
		if m.error != "" {
			view += errorStyle.Render(m.error) + "\n"
		}
		return docStyle.Render(view)
	case "plan":
		if m.loading {
			return docStyle.Render(m.spinner.View() + " Composing your plan...")
		}
		if m.error != "" {
			return docStyle.Render(titleStyle.Render("Generate Plan") + "\n\n" + errorStyle.Render(m.error) + "\n\nPress 'esc' to go back")
		}
		if m.planResult == nil {
			return docStyle.Render("Loading...")
		}
		view := planView(m.planResult)
		if m.notice != "" {
			view += "\n" + successStyle.Render("Saved to "+m.notice)
		}
		return docStyle.Render(view)
	case "advice":
		if m.loading {
			return docStyle.Render(m.spinner.View() + " Loading guidance...")
		}
		if m.error != "" {
			return docStyle.Render(errorStyle.Render(m.error) + "\n\nPress 'esc' to go back")
		}
		if m.guidance == nil {
			return docStyle.Render("Loading...")
		}
		return docStyle.Render(guidanceView(m.guidance))
	case "status":
		if m.loading {
			return docStyle.Render(m.spinner.View() + " Loading status...")
		}
		if m.error != "" {
			return docStyle.Render(errorStyle.Render(m.error) + "\n\nPress 'esc' to go back")
		}
		return docStyle.Render(statusView(m.status))
	default:
		return "Loading..."
	}
}

// Custom message types for the tea.Model
type foodsMsg struct {
	foods []FoodItem
}

type planMsg struct {
	plan *PlanResponse
}

type adviceMsg struct {
	guidance *Guidance
}

type statusMsg struct {
	status map[string]interface{}
}

type savedMsg struct {
	path string
}

type errorMsg struct {
	err string
}

// buildPlanRequest parses the collected form answers
func buildPlanRequest(answers map[string]string) (*PlanRequest, error) {
	weight, err := strconv.ParseFloat(answers["weight"], 64)
	if err != nil || weight <= 0 {
		return nil, fmt.Errorf("weight must be a positive number, got %q", answers["weight"])
	}
	height, err := strconv.ParseFloat(answers["height"], 64)
	if err != nil || height <= 0 {
		return nil, fmt.Errorf("height must be a positive number, got %q", answers["height"])
	}
	age, err := strconv.Atoi(answers["age"])
	if err != nil || age <= 0 {
		return nil, fmt.Errorf("age must be a positive whole number, got %q", answers["age"])
	}

	var allergies []string
	if raw := answers["allergies"]; raw != "" && !strings.EqualFold(raw, "none") {
		for _, a := range strings.Split(raw, ",") {
			if a = strings.TrimSpace(a); a != "" {
				allergies = append(allergies, a)
			}
		}
	}

	orDefault := func(value, fallback string) string {
		if value == "" {
			return fallback
		}
		return value
	}

	return &PlanRequest{
		Name:               answers["name"],
		WeightKg:           weight,
		HeightCm:           height,
		Age:                age,
		Gender:             orDefault(answers["gender"], "Female"),
		ActivityLevel:      orDefault(answers["activity"], "Moderate"),
		DietaryPreference:  orDefault(answers["diet"], "Vegetarian"),
		Allergies:          allergies,
		Goal:               orDefault(answers["goal"], "Maintain Weight"),
		BudgetLevel:        orDefault(answers["budget"], "Medium"),
		RegionalPreference: answers["region"],
	}, nil
}

// fetchFoods retrieves the catalog from the API
func fetchFoods(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		foods, err := client.GetFoods()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching foods: %v", err)}
		}
		return foodsMsg{foods: foods}
	}
}

// generatePlan requests a plan for the collected profile
func generatePlan(client *ApiClient, req *PlanRequest) tea.Cmd {
	return func() tea.Msg {
		plan, err := client.GeneratePlan(req)
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error generating plan: %v", err)}
		}
		return planMsg{plan: plan}
	}
}

// savePlan fetches the plain-text export and writes it next to the binary
func savePlan(client *ApiClient, req *PlanRequest) tea.Cmd {
	return func() tea.Msg {
		text, err := client.ExportPlan(req)
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error exporting plan: %v", err)}
		}
		const path = "health_fitness_plan.txt"
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return errorMsg{err: fmt.Sprintf("Error writing %s: %v", path, err)}
		}
		return savedMsg{path: path}
	}
}

// fetchAdvice retrieves guidance for an activity level
func fetchAdvice(client *ApiClient, activity string, weightKg float64) tea.Cmd {
	return func() tea.Msg {
		guidance, err := client.GetAdvice(activity, weightKg)
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching advice: %v", err)}
		}
		return adviceMsg{guidance: guidance}
	}
}

// fetchStatus retrieves the server's runtime counters
func fetchStatus(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		status, err := client.GetStatus()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching status: %v", err)}
		}
		return statusMsg{status: status}
	}
}

// convertFoodsToRows converts catalog entries to table rows
func convertFoodsToRows(foods []FoodItem) []table.Row {
	rows := make([]table.Row, len(foods))
	for i, food := range foods {
		price := "-"
		if food.Price != nil {
			price = fmt.Sprintf("%.0f", *food.Price)
		}
		rows[i] = table.Row{
			food.Name,
			food.DietClass,
			food.Category,
			fmt.Sprintf("%.0f", food.Calories),
			price,
		}
	}
	return rows
}

// planView renders a generated plan
func planView(plan *PlanResponse) string {
	name := plan.Name
	if name == "" {
		name = "you"
	}
	view := titleStyle.Render(fmt.Sprintf("Diet Plan for %s", name)) + "\n\n"
	view += fmt.Sprintf("BMR: %.0f kcal   Daily target: %.0f kcal\n", plan.Targets.BMR, plan.Targets.DailyCalories)
	view += fmt.Sprintf("Protein: %.0fg   Water: %.0f ml   Est. cost: ₹%.0f\n", plan.Targets.ProteinGrams, plan.Targets.WaterML, plan.Plan.TotalCost)

	for _, slot := range plan.Plan.SlotOrder {
		meal := plan.Plan.Meals[slot]
		view += "\n" + infoStyle.Render(fmt.Sprintf("%s — %.0f of %.0f kcal", slot, meal.Calories, meal.TargetCalories)) + "\n"
		if len(meal.Foods) == 0 {
			view += "  no suitable foods found for this slot\n"
		}
		for _, food := range meal.Foods {
			view += fmt.Sprintf("  %s: %.0fg (%.0f kcal, ₹%.0f)\n", food.Food, food.Portion, food.Calories, food.Cost)
		}
	}

	if plan.Advice != "" {
		view += "\n" + successStyle.Render("Advice") + "\n" + plan.Advice + "\n"
	}
	view += "\nPress 's' to save as text, 'enter' or 'esc' to go back"
	return view
}

// guidanceView renders the exercise and hydration guidance
func guidanceView(g *Guidance) string {
	view := titleStyle.Render(g.Routine) + "\n\n"
	for _, line := range g.Exercise {
		view += "• " + line + "\n"
	}
	view += "\nWeekly goals:\n"
	for _, line := range g.WeeklyGoals {
		view += "• " + line + "\n"
	}
	view += "\nHydration:\n"
	for _, line := range g.Hydration {
		view += "• " + line + "\n"
	}
	view += "\nPress 'enter' or 'esc' to go back"
	return view
}

// statusView renders the server's runtime counters
func statusView(status map[string]interface{}) string {
	view := titleStyle.Render("Server Status") + "\n\n"
	for _, key := range []string{"uptime_seconds", "plans_generated", "plans_failed", "under_target_meals", "last_plan_at", "last_plan_cost"} {
		if value, ok := status[key]; ok {
			view += fmt.Sprintf("%s: %v\n", key, value)
		}
	}
	view += "\nPress 'enter' or 'esc' to go back"
	return view
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v", err)
		os.Exit(1)
	}
}
