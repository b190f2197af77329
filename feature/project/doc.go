// Package project owns the campaign side of the data model: projects, their
// sections, and the per-section survey questions with options.
//
// The write side (creating and editing projects) lives in the admin
// application; this feature exposes the read path the rest of the server
// needs:
//
//   - Typed repositories (ProjectRepository, SectionRepository,
//     QuestionRepository) used by the record reconciler to resolve the
//     project, section and question references of a submission.
//   - The /api/projects sync feed mobile clients use to download the
//     questionnaire definitions.
package project
