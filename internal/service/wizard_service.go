package service

import (
	"acceluni_backend/internal/util"
	"acceluni_backend/pkg/logger"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// DraftStore 保存每个用户的向导草稿
type DraftStore interface {
	Load(ctx context.Context, userID uint) ([]byte, error)
	Save(ctx context.Context, userID uint, data []byte) error
	Clear(ctx context.Context, userID uint) error
}

type WizardService struct {
	Drafts     DraftStore
	Degrees    *DegreeService
	Courses    *CourseService
	Generation *GenerationService
}

func NewWizardService(drafts DraftStore, degrees *DegreeService, courses *CourseService, generation *GenerationService) *WizardService {
	return &WizardService{Drafts: drafts, Degrees: degrees, Courses: courses, Generation: generation}
}

type WizardState struct {
	Wizard     *Wizard `json:"wizard"`
	Moved      bool    `json:"moved"`
	CanProceed bool    `json:"canProceed"`
	Accessible []int   `json:"accessible"`
}

func stateOf(w *Wizard, moved bool) *WizardState {
	st := &WizardState{Wizard: w, Moved: moved, CanProceed: w.CanProceed(), Accessible: []int{}}
	for step := StepPlanType; step <= StepReview; step++ {
		if w.IsAccessible(step) {
			st.Accessible = append(st.Accessible, step)
		}
	}
	return st
}

// Load 草稿不存在或已损坏时返回新的向导
func (s *WizardService) Load(ctx context.Context, userID uint) (*Wizard, error) {
	data, err := s.Drafts.Load(ctx, userID)
	if err != nil {
		return nil, util.WrapInternal("load draft", err)
	}
	if len(data) == 0 {
		return NewWizard(), nil
	}
	w, err := DeserializeWizard(data)
	if err != nil {
		logger.Log.Warn("discarding unreadable wizard draft", zap.Uint("userID", userID), zap.Error(err))
		return NewWizard(), nil
	}
	return w, nil
}

func (s *WizardService) save(ctx context.Context, userID uint, w *Wizard) error {
	data, err := w.Serialize()
	if err != nil {
		return util.WrapInternal("encode draft", err)
	}
	if err := s.Drafts.Save(ctx, userID, data); err != nil {
		return util.WrapInternal("save draft", err)
	}
	return nil
}

func (s *WizardService) State(ctx context.Context, userID uint) (*WizardState, error) {
	w, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return stateOf(w, false), nil
}

// Update 每次修改字段都会写回草稿
func (s *WizardService) Update(ctx context.Context, userID uint, patch WizardPatch) (*WizardState, error) {
	w, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := w.Apply(patch); err != nil {
		return nil, err
	}
	if err := s.save(ctx, userID, w); err != nil {
		return nil, err
	}
	return stateOf(w, false), nil
}

func (s *WizardService) navigate(ctx context.Context, userID uint, move func(*Wizard) bool) (*WizardState, error) {
	w, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	moved := move(w)
	if moved {
		if err := s.save(ctx, userID, w); err != nil {
			return nil, err
		}
	}
	return stateOf(w, moved), nil
}

func (s *WizardService) Next(ctx context.Context, userID uint) (*WizardState, error) {
	return s.navigate(ctx, userID, (*Wizard).Next)
}

func (s *WizardService) Back(ctx context.Context, userID uint) (*WizardState, error) {
	return s.navigate(ctx, userID, (*Wizard).Back)
}

func (s *WizardService) JumpTo(ctx context.Context, userID uint, step int) (*WizardState, error) {
	return s.navigate(ctx, userID, func(w *Wizard) bool { return w.JumpTo(step) })
}

func (s *WizardService) Clear(ctx context.Context, userID uint) error {
	if err := s.Drafts.Clear(ctx, userID); err != nil {
		return util.WrapInternal("clear draft", err)
	}
	return nil
}

type SubmitResult struct {
	Kind     string `json:"kind"`
	ID       string `json:"id"`
	Redirect string `json:"redirect"`
}

// Submit 创建学位或课程并在后台生成内容；失败时草稿保持不变
func (s *WizardService) Submit(ctx context.Context, userID uint) (*SubmitResult, error) {
	w, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !w.Complete() {
		return nil, util.NewValidationError("plan type, subject and both knowledge levels are required")
	}

	var result *SubmitResult
	if w.Form.PlanType == PlanFullProgram {
		degree, err := s.Degrees.Create(ctx, userID, w.Form.title(), w.Form.description())
		if err != nil {
			return nil, err
		}
		s.Generation.InBackground("degree:"+degree.ID, func(ctx context.Context) (*BatchResult, error) {
			return s.Generation.GenerateCourses(ctx, userID, degree.ID, 0)
		})
		result = &SubmitResult{Kind: "degree", ID: degree.ID, Redirect: fmt.Sprintf("/degrees/%s", degree.ID)}
	} else {
		course, err := s.Courses.Create(ctx, userID, CourseInput{Name: w.Form.title(), Description: w.Form.description()})
		if err != nil {
			return nil, err
		}
		s.Generation.InBackground("course:"+course.ID, func(ctx context.Context) (*BatchResult, error) {
			return s.Generation.GenerateLessons(ctx, userID, course.ID, 0)
		})
		result = &SubmitResult{Kind: "course", ID: course.ID, Redirect: fmt.Sprintf("/courses/%s", course.ID)}
	}

	if err := s.Drafts.Clear(ctx, userID); err != nil {
		logger.Log.Warn("clear wizard draft failed", zap.Uint("userID", userID), zap.Error(err))
	}
	return result, nil
}
