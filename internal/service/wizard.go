package service

import (
	"acceluni_backend/internal/util"
	"encoding/json"
	"strings"
)

type PlanType string

const (
	PlanSingleCourse PlanType = "single_course"
	PlanFullProgram  PlanType = "full_program"
)

type KnowledgeLevel string

const (
	LevelBeginner     KnowledgeLevel = "beginner"
	LevelIntermediate KnowledgeLevel = "intermediate"
	LevelAdvanced     KnowledgeLevel = "advanced"
	LevelExpert       KnowledgeLevel = "expert"
)

func (l KnowledgeLevel) valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return true
	}
	return false
}

// 向导步骤
const (
	StepPlanType = iota + 1
	StepSubject
	StepKnowledgeLevel
	StepReview
)

type WizardForm struct {
	PlanType      PlanType       `json:"planType"`
	Subject       string         `json:"subject"`
	StartingLevel KnowledgeLevel `json:"startingLevel"`
	DesiredLevel  KnowledgeLevel `json:"desiredLevel"`
}

// WizardPatch 只更新非空字段
type WizardPatch struct {
	PlanType      *PlanType       `json:"planType"`
	Subject       *string         `json:"subject"`
	StartingLevel *KnowledgeLevel `json:"startingLevel"`
	DesiredLevel  *KnowledgeLevel `json:"desiredLevel"`
}

type Wizard struct {
	Step int        `json:"step"`
	Form WizardForm `json:"form"`
}

func NewWizard() *Wizard {
	return &Wizard{Step: StepPlanType}
}

// CanProceed 当前步骤的必填项是否已填写
func (w *Wizard) CanProceed() bool {
	f := w.Form
	switch w.Step {
	case StepPlanType:
		return f.PlanType != ""
	case StepSubject:
		return f.Subject != ""
	case StepKnowledgeLevel:
		return f.StartingLevel != "" && f.DesiredLevel != ""
	case StepReview:
		return true
	}
	return false
}

// Next 返回是否发生了移动；必填项缺失或已在最后一步时不变
func (w *Wizard) Next() bool {
	if !w.CanProceed() || w.Step >= StepReview {
		return false
	}
	w.Step++
	return true
}

func (w *Wizard) Back() bool {
	if w.Step <= StepPlanType {
		return false
	}
	w.Step--
	return true
}

// IsAccessible 第 n 步可达当且仅当前 n-1 步的字段都已填写
func (w *Wizard) IsAccessible(step int) bool {
	f := w.Form
	switch step {
	case StepPlanType:
		return true
	case StepSubject:
		return f.PlanType != ""
	case StepKnowledgeLevel:
		return w.IsAccessible(StepSubject) && f.Subject != ""
	case StepReview:
		return w.IsAccessible(StepKnowledgeLevel) && f.StartingLevel != "" && f.DesiredLevel != ""
	}
	return false
}

func (w *Wizard) JumpTo(step int) bool {
	if step < StepPlanType || step > StepReview {
		return false
	}
	if step > w.Step && !w.IsAccessible(step) {
		return false
	}
	w.Step = step
	return true
}

// Complete 提交前四项都必须填写
func (w *Wizard) Complete() bool {
	return w.IsAccessible(StepReview)
}

func (w *Wizard) Apply(p WizardPatch) error {
	if p.PlanType != nil {
		switch *p.PlanType {
		case PlanSingleCourse, PlanFullProgram, "":
		default:
			return util.NewValidationError("unknown plan type %q", *p.PlanType)
		}
		w.Form.PlanType = *p.PlanType
	}
	if p.Subject != nil {
		subject := strings.TrimSpace(*p.Subject)
		if len(subject) > 200 {
			return util.NewValidationError("subject is too long")
		}
		w.Form.Subject = subject
	}
	for _, lv := range []*KnowledgeLevel{p.StartingLevel, p.DesiredLevel} {
		if lv != nil && *lv != "" && !lv.valid() {
			return util.NewValidationError("unknown knowledge level %q", *lv)
		}
	}
	if p.StartingLevel != nil {
		w.Form.StartingLevel = *p.StartingLevel
	}
	if p.DesiredLevel != nil {
		w.Form.DesiredLevel = *p.DesiredLevel
	}
	w.settle()
	return nil
}

// settle 字段被清空后退回到仍可达的步骤
func (w *Wizard) settle() {
	if w.Step < StepPlanType {
		w.Step = StepPlanType
	}
	if w.Step > StepReview {
		w.Step = StepReview
	}
	for w.Step > StepPlanType && !w.IsAccessible(w.Step) {
		w.Step--
	}
}

func (w *Wizard) Serialize() ([]byte, error) {
	return json.Marshal(w)
}

// DeserializeWizard 将草稿合并进一个新的向导，非法值会被丢弃
func DeserializeWizard(data []byte) (*Wizard, error) {
	var stored Wizard
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, err
	}
	w := NewWizard()
	f := stored.Form
	patch := WizardPatch{PlanType: &f.PlanType, Subject: &f.Subject, StartingLevel: &f.StartingLevel, DesiredLevel: &f.DesiredLevel}
	if err := w.Apply(patch); err != nil {
		return nil, err
	}
	w.Step = stored.Step
	w.settle()
	return w, nil
}

var levelTitles = map[KnowledgeLevel]string{
	LevelBeginner:     "Beginner",
	LevelIntermediate: "Intermediate",
	LevelAdvanced:     "Advanced",
	LevelExpert:       "Expert",
}

func (f WizardForm) title() string {
	if f.PlanType == PlanFullProgram {
		return f.Subject
	}
	return f.Subject + ": " + levelTitles[f.StartingLevel] + " to " + levelTitles[f.DesiredLevel]
}

func (f WizardForm) description() string {
	kind := "course"
	if f.PlanType == PlanFullProgram {
		kind = "full program"
	}
	return "A " + kind + " in " + f.Subject + " that takes you from " +
		string(f.StartingLevel) + " to " + string(f.DesiredLevel) + " level."
}
