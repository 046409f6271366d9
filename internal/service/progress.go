package service

import (
	"acceluni_backend/internal/model"
	"acceluni_backend/internal/util"
)

type Progress struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

func newProgress(completed, total int) Progress {
	return Progress{Completed: completed, Total: total, Percentage: util.Percent(completed, total)}
}

func countCompleted(lessons []model.Lesson) int {
	n := 0
	for _, l := range lessons {
		if l.Status == model.LessonCompleted {
			n++
		}
	}
	return n
}

func CourseProgress(lessons []model.Lesson) Progress {
	return newProgress(countCompleted(lessons), len(lessons))
}

// DegreeProgress 按全部课时扁平计算，而不是对各课程百分比取平均
func DegreeProgress(courses []model.Course) Progress {
	completed, total := 0, 0
	for _, c := range courses {
		completed += countCompleted(c.Lessons)
		total += len(c.Lessons)
	}
	return newProgress(completed, total)
}

type HomeStats struct {
	TotalLessonsCompleted int `json:"totalLessonsCompleted"`
	TotalTestsCompleted   int `json:"totalTestsCompleted"`
	AverageTestScore      int `json:"averageTestScore"`
}

// HomeRollup 只统计用户仍拥有的课时上的测试分数
func HomeRollup(lessons []model.Lesson, progress []model.UserLessonProgress) HomeStats {
	owned := make(map[string]struct{}, len(lessons))
	for _, l := range lessons {
		owned[l.ID] = struct{}{}
	}

	var scores []int
	for _, p := range progress {
		if p.TestScore == nil {
			continue
		}
		if _, ok := owned[p.LessonID]; ok {
			scores = append(scores, *p.TestScore)
		}
	}

	return HomeStats{
		TotalLessonsCompleted: countCompleted(lessons),
		TotalTestsCompleted:   len(scores),
		AverageTestScore:      util.RoundedMean(scores),
	}
}

type CourseView struct {
	model.Course
	Progress Progress `json:"progress"`
}

type DegreeView struct {
	model.Degree
	Courses  []CourseView `json:"courses"`
	Progress Progress     `json:"progress"`
}

func newCourseView(c model.Course) CourseView {
	return CourseView{Course: c, Progress: CourseProgress(c.Lessons)}
}

func newDegreeView(d model.Degree) DegreeView {
	view := DegreeView{Degree: d, Courses: make([]CourseView, 0, len(d.Courses)), Progress: DegreeProgress(d.Courses)}
	for _, c := range d.Courses {
		view.Courses = append(view.Courses, newCourseView(c))
	}
	return view
}
