package sim

import (
	"bytes"
	"context"
	"errors"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/bietkhonhungvandi212/pagesim/internal/storage/buffer"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(GinkgoWriter, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func accessesOf(ids ...util.PageID) []util.PageID {
	return ids
}

var _ = Describe("Simulator", func() {
	var (
		mockCtrl *gomock.Controller
		s        *Simulator
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())

		var err error
		s, err = NewSimulator(3, buffer.NewFIFOReplacer(), WithLogger(testLogger()))
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should start in NotStarted with a run id", func() {
		Expect(s.State()).To(Equal(NotStarted))
		Expect(s.ID()).NotTo(BeEmpty())
	})

	It("should accept a custom run id", func() {
		s, err := NewSimulator(1, buffer.NewLRUReplacer(), WithRunID("run-1"))
		Expect(err).NotTo(HaveOccurred())
		Expect(s.ID()).To(Equal("run-1"))
	})

	It("should reject an invalid capacity", func() {
		_, err := NewSimulator(0, buffer.NewFIFOReplacer())
		Expect(err).To(MatchError(util.ErrInvalidCapacity))
		Expect(errors.Is(err, util.KindError(util.ErrKindConfiguration))).To(BeTrue())
	})

	It("should record one snapshot per access", func() {
		err := s.Start(context.Background(), accessesOf(1, 2, 3, 4, 1, 2, 5))
		Expect(err).NotTo(HaveOccurred())
		Expect(s.State()).To(Equal(Finished))

		result, err := s.Result()
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Accesses()).To(Equal(7))
		Expect(result.Faults()).To(Equal(7))
		Expect(result.Policy).To(Equal(buffer.PolicyFIFO))
		Expect(result.Capacity).To(Equal(3))
		Expect(result.RunID).To(Equal(s.ID()))
		Expect(result.Snapshots()).To(Equal([][]util.PageID{
			{1}, {1, 2}, {1, 2, 3}, {4, 2, 3}, {4, 1, 3}, {4, 1, 2}, {5, 1, 2},
		}))

		Expect(result.Steps[3].Evicted).To(BeTrue())
		Expect(result.Steps[3].Victim).To(Equal(util.PageID(1)))
		Expect(result.Steps[3].FrameIdx).To(Equal(0))
	})

	It("should refuse results before finishing", func() {
		_, err := s.Result()
		Expect(err).To(MatchError(util.ErrNotFinished))
	})

	It("should refuse to start twice", func() {
		Expect(s.Start(context.Background(), accessesOf(1))).To(Succeed())

		err := s.Start(context.Background(), accessesOf(1))
		Expect(err).To(MatchError(util.ErrAlreadyStarted))
	})

	It("should refuse an empty sequence", func() {
		err := s.Start(context.Background(), nil)
		Expect(err).To(MatchError(util.ErrEmptySequence))
		Expect(errors.Is(err, util.KindError(util.ErrKindSequence))).To(BeTrue())
		Expect(s.State()).To(Equal(NotStarted))
	})

	It("should stop when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := s.Start(ctx, accessesOf(1, 2))
		Expect(err).To(MatchError(context.Canceled))
		Expect(s.State()).To(Equal(Finished))

		_, err = s.Result()
		Expect(err).To(MatchError(context.Canceled))
	})

	It("should invoke hooks for every access and once at the end", func() {
		hook := NewMockHook(mockCtrl)
		s.AcceptHook(hook)
		Expect(s.NumHooks()).To(Equal(1))

		var steps []Step
		accessHook := hook.EXPECT().
			Func(gomock.Any()).
			Do(func(ctx HookCtx) {
				Expect(ctx.Pos).To(Equal(HookPosAccess))
				Expect(ctx.Domain).To(BeIdenticalTo(s))
				steps = append(steps, ctx.Item.(Step))
			}).
			Times(4)
		hook.EXPECT().
			Func(gomock.Any()).
			Do(func(ctx HookCtx) {
				Expect(ctx.Pos).To(Equal(HookPosFinished))
				result := ctx.Item.(*Result)
				Expect(result.Faults()).To(Equal(3))
			}).
			After(accessHook)

		Expect(s.Start(context.Background(), accessesOf(1, 2, 1, 3))).To(Succeed())

		Expect(steps).To(HaveLen(4))
		Expect(steps[2].Fault).To(BeFalse())
		Expect(steps[3].Snapshot).To(Equal([]util.PageID{1, 2, 3}))
	})

	Context("when the replacer is out of sync", func() {
		var replacer *MockReplacer

		BeforeEach(func() {
			replacer = NewMockReplacer(mockCtrl)
			replacer.EXPECT().Policy().Return(buffer.PolicyFIFO).AnyTimes()
			replacer.EXPECT().Admitted(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			replacer.EXPECT().Accessed(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			var err error
			s, err = NewSimulator(1, replacer, WithLogger(testLogger()))
			Expect(err).NotTo(HaveOccurred())
		})

		It("should fail with an invariant violation", func() {
			replacer.EXPECT().Victim(gomock.Any()).Return(util.PageID(42), nil)

			err := s.Start(context.Background(), accessesOf(1, 2))
			Expect(err).To(MatchError(util.ErrPageNotResident))
			Expect(errors.Is(err, util.KindError(util.ErrKindInvariant))).To(BeTrue())

			_, err = s.Result()
			Expect(err).To(HaveOccurred())
		})

		It("should propagate a victim selection error", func() {
			replacer.EXPECT().Victim(gomock.Any()).Return(util.PageID(0), util.ErrNoVictim)

			err := s.Start(context.Background(), accessesOf(5, 6))
			Expect(err).To(MatchError(util.ErrNoVictim))
			Expect(errors.Is(err, util.KindError(util.ErrKindInvariant))).To(BeTrue())
		})

		It("should not consult the replacer for victims while memory has room", func() {
			Expect(s.Start(context.Background(), accessesOf(9, 9, 9))).To(Succeed())
		})
	})
})

var _ = Describe("Run", func() {
	It("should reject a non-positive capacity", func() {
		_, err := Run(context.Background(), Params{Capacity: 0, Policy: buffer.PolicyLRU}, accessesOf(1))
		Expect(err).To(MatchError(util.ErrInvalidCapacity))
		Expect(errors.Is(err, util.KindError(util.ErrKindConfiguration))).To(BeTrue())
	})

	It("should reject an unknown policy", func() {
		_, err := Run(context.Background(), Params{Capacity: 2, Policy: buffer.Policy(9)}, accessesOf(1))
		Expect(err).To(MatchError(util.ErrInvalidPolicy))
		Expect(errors.Is(err, util.KindError(util.ErrKindConfiguration))).To(BeTrue())
	})

	It("should reject an empty sequence", func() {
		_, err := Run(context.Background(), Params{Capacity: 2, Policy: buffer.PolicyFIFO}, nil)
		Expect(err).To(MatchError(util.ErrEmptySequence))
	})

	It("should simulate LRU", func() {
		result, err := Run(context.Background(),
			Params{Capacity: 2, Policy: buffer.PolicyLRU, Logger: testLogger()},
			accessesOf(1, 2, 1, 3))
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Snapshots()[3]).To(Equal([]util.PageID{1, 3}))
		Expect(result.Faults()).To(Equal(3))
	})

	It("should be reproducible", func() {
		accesses := accessesOf(7, 0, 1, 2, 0, 3, 0, 4, 2, 3, 0, 3, 2, 1, 2, 0, 1, 7, 0, 1)
		for _, policy := range buffer.Policies {
			params := Params{Capacity: 3, Policy: policy}
			first, err := Run(context.Background(), params, accesses)
			Expect(err).NotTo(HaveOccurred())
			second, err := Run(context.Background(), params, accesses)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Snapshots()).To(Equal(first.Snapshots()))
			Expect(second.Faults()).To(Equal(first.Faults()))
		}
	})

	It("should pass registered hooks through", func() {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		_, err := Run(context.Background(),
			Params{Capacity: 1, Policy: buffer.PolicySecondChance, Hooks: []Hook{NewStepLogger(logger)}},
			accessesOf(3, 4))
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).To(ContainSubstring("msg=access"))
		Expect(buf.String()).To(ContainSubstring("victim=3"))
	})
})
