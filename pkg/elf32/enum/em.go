package enum

// EM is the e_machine field: the target instruction set architecture. This
// domain carries the full historical constant list, including reserved
// placeholders and the various toolchain-specific "_OLD"/cygnus values
// that predate the values' standardization.
type EM uint32

const (
	EM_NONE EM = 0
	EM_M32 EM = 1
	EM_SPARC EM = 2
	EM_386 EM = 3
	EM_68K EM = 4
	EM_88K EM = 5
	EM_IAMCU EM = 6
	EM_860 EM = 7
	EM_MIPS EM = 8
	EM_S370 EM = 9
	EM_MIPS_RS3_LE EM = 10
	EM_OLD_SPARCV9 EM = 11
	EM_res011 EM = 11
	EM_res012 EM = 12
	EM_res013 EM = 13
	EM_res014 EM = 14
	EM_PARISC EM = 15
	EM_res016 EM = 16
	EM_PPC_OLD EM = 17
	EM_VPP550 EM = 17
	EM_SPARC32PLUS EM = 18
	EM_960 EM = 19
	EM_PPC EM = 20
	EM_PPC64 EM = 21
	EM_S390 EM = 22
	EM_SPU EM = 23
	EM_res024 EM = 24
	EM_res025 EM = 25
	EM_res026 EM = 26
	EM_res027 EM = 27
	EM_res028 EM = 28
	EM_res029 EM = 29
	EM_res030 EM = 30
	EM_res031 EM = 31
	EM_res032 EM = 32
	EM_res033 EM = 33
	EM_res034 EM = 34
	EM_res035 EM = 35
	EM_V800 EM = 36
	EM_FR20 EM = 37
	EM_RH32 EM = 38
	EM_MCORE EM = 39
	EM_RCE EM = 39
	EM_ARM EM = 40
	EM_OLD_ALPHA EM = 41
	EM_SH EM = 42
	EM_SPARCV9 EM = 43
	EM_TRICORE EM = 44
	EM_ARC EM = 45
	EM_H8_300 EM = 46
	EM_H8_300H EM = 47
	EM_H8S EM = 48
	EM_H8_500 EM = 49
	EM_IA_64 EM = 50
	EM_MIPS_X EM = 51
	EM_COLDFIRE EM = 52
	EM_68HC12 EM = 53
	EM_MMA EM = 54
	EM_PCP EM = 55
	EM_NCPU EM = 56
	EM_NDR1 EM = 57
	EM_STARCORE EM = 58
	EM_ME16 EM = 59
	EM_ST100 EM = 60
	EM_TINYJ EM = 61
	EM_X86_64 EM = 62
	EM_PDSP EM = 63
	EM_PDP10 EM = 64
	EM_PDP11 EM = 65
	EM_FX66 EM = 66
	EM_ST9PLUS EM = 67
	EM_ST7 EM = 68
	EM_68HC16 EM = 69
	EM_68HC11 EM = 70
	EM_68HC08 EM = 71
	EM_68HC05 EM = 72
	EM_SVX EM = 73
	EM_ST19 EM = 74
	EM_VAX EM = 75
	EM_CRIS EM = 76
	EM_JAVELIN EM = 77
	EM_FIREPATH EM = 78
	EM_ZSP EM = 79
	EM_MMIX EM = 80
	EM_HUANY EM = 81
	EM_PRISM EM = 82
	EM_AVR EM = 83
	EM_FR30 EM = 84
	EM_D10V EM = 85
	EM_D30V EM = 86
	EM_V850 EM = 87
	EM_M32R EM = 88
	EM_MN10300 EM = 89
	EM_MN10200 EM = 90
	EM_PJ EM = 91
	EM_OR1K EM = 92
	EM_ARC_COMPACT EM = 93
	EM_XTENSA EM = 94
	EM_SCORE_OLD EM = 95
	EM_VIDEOCORE EM = 95
	EM_TMM_GPP EM = 96
	EM_NS32K EM = 97
	EM_TPC EM = 98
	EM_PJ_OLD EM = 99
	EM_SNP1K EM = 99
	EM_ST200 EM = 100
	EM_IP2K EM = 101
	EM_MAX EM = 102
	EM_CR EM = 103
	EM_F2MC16 EM = 104
	EM_MSP430 EM = 105
	EM_BLACKFIN EM = 106
	EM_SE_C33 EM = 107
	EM_SEP EM = 108
	EM_ARCA EM = 109
	EM_UNICORE EM = 110
	EM_EXCESS EM = 111
	EM_DXP EM = 112
	EM_ALTERA_NIOS2 EM = 113
	EM_CRX EM = 114
	EM_CR16_OLD EM = 115
	EM_XGATE EM = 115
	EM_C166 EM = 116
	EM_M16C EM = 117
	EM_DSPIC30F EM = 118
	EM_CE EM = 119
	EM_M32C EM = 120
	EM_res121 EM = 121
	EM_res122 EM = 122
	EM_res123 EM = 123
	EM_res124 EM = 124
	EM_res125 EM = 125
	EM_res126 EM = 126
	EM_res127 EM = 127
	EM_res128 EM = 128
	EM_res129 EM = 129
	EM_res130 EM = 130
	EM_TSK3000 EM = 131
	EM_RS08 EM = 132
	EM_res133 EM = 133
	EM_ECOG2 EM = 134
	EM_SCORE EM = 135
	EM_SCORE7 EM = 135
	EM_DSP24 EM = 136
	EM_VIDEOCORE3 EM = 137
	EM_LATTICEMICO32 EM = 138
	EM_SE_C17 EM = 139
	EM_TI_C6000 EM = 140
	EM_TI_C2000 EM = 141
	EM_TI_C5500 EM = 142
	EM_res143 EM = 143
	EM_TI_PRU EM = 144
	EM_res145 EM = 145
	EM_res146 EM = 146
	EM_res147 EM = 147
	EM_res148 EM = 148
	EM_res149 EM = 149
	EM_res150 EM = 150
	EM_res151 EM = 151
	EM_res152 EM = 152
	EM_res153 EM = 153
	EM_res154 EM = 154
	EM_res155 EM = 155
	EM_res156 EM = 156
	EM_res157 EM = 157
	EM_res158 EM = 158
	EM_res159 EM = 159
	EM_MMDSP_PLUS EM = 160
	EM_CYPRESS_M8C EM = 161
	EM_R32C EM = 162
	EM_TRIMEDIA EM = 163
	EM_QDSP6 EM = 164
	EM_8051 EM = 165
	EM_STXP7X EM = 166
	EM_NDS32 EM = 167
	EM_ECOG1 EM = 168
	EM_ECOG1X EM = 168
	EM_MAXQ30 EM = 169
	EM_XIMO16 EM = 170
	EM_MANIK EM = 171
	EM_CRAYNV2 EM = 172
	EM_RX EM = 173
	EM_METAG EM = 174
	EM_MCST_ELBRUS EM = 175
	EM_ECOG16 EM = 176
	EM_CR16 EM = 177
	EM_ETPU EM = 178
	EM_SLE9X EM = 179
	EM_L1OM EM = 180
	EM_K1OM EM = 181
	EM_INTEL182 EM = 182
	EM_AARCH64 EM = 183
	EM_ARM184 EM = 184
	EM_AVR32 EM = 185
	EM_STM8 EM = 186
	EM_TILE64 EM = 187
	EM_TILEPRO EM = 188
	EM_MICROBLAZE EM = 189
	EM_CUDA EM = 190
	EM_TILEGX EM = 191
	EM_CLOUDSHIELD EM = 192
	EM_COREA_1ST EM = 193
	EM_COREA_2ND EM = 194
	EM_ARC_COMPACT2 EM = 195
	EM_OPEN8 EM = 196
	EM_RL78 EM = 197
	EM_VIDEOCORE5 EM = 198
	EM_78K0R EM = 199
	EM_56800EX EM = 200
	EM_BA1 EM = 201
	EM_BA2 EM = 202
	EM_XCORE EM = 203
	EM_MCHP_PIC EM = 204
	EM_INTELGT EM = 205
	EM_INTEL206 EM = 206
	EM_INTEL207 EM = 207
	EM_INTEL208 EM = 208
	EM_INTEL209 EM = 209
	EM_KM32 EM = 210
	EM_KMX32 EM = 211
	EM_KMX16 EM = 212
	EM_KMX8 EM = 213
	EM_KVARC EM = 214
	EM_CDP EM = 215
	EM_COGE EM = 216
	EM_COOL EM = 217
	EM_NORC EM = 218
	EM_CSR_KALIMBA EM = 219
	EM_Z80 EM = 220
	EM_VISIUM EM = 221
	EM_FT32 EM = 222
	EM_MOXIE EM = 223
	EM_AMDGPU EM = 224
	EM_RISCV EM = 243
	EM_LANAI EM = 244
	EM_CEVA EM = 245
	EM_CEVA_X2 EM = 246
	EM_BPF EM = 247
	EM_GRAPHCORE_IPU EM = 248
	EM_IMG1 EM = 249
	EM_NFP EM = 250
	EM_VE EM = 251
	EM_CSKY EM = 252
	EM_ARC_COMPACT3_64 EM = 253
	EM_MCS6502 EM = 254
	EM_ARC_COMPACT3 EM = 255
	EM_KVX EM = 256
	EM_65816 EM = 257
	EM_LOONGARCH EM = 258
	EM_KF32 EM = 259
	EM_U16_U8CORE EM = 260
	EM_TACHYUM EM = 261
	EM_56800EF EM = 262
	EM_AVR_OLD EM = 0x1057
	EM_MSP430_OLD EM = 0x1059
	EM_MT EM = 0x2530
	EM_CYGNUS_FR30 EM = 0x3330
	EM_WEBASSEMBLY EM = 0x4157
	EM_S12Z EM = 0x4def
	EM_DLX EM = 0x5aa5
	EM_CYGNUS_FRV EM = 0x5441
	EM_XC16X EM = 0x4688
	EM_CYGNUS_D10V EM = 0x7650
	EM_CYGNUS_D30V EM = 0x7676
	EM_IP2K_OLD EM = 0x8217
	EM_CYGNUS_POWERPC EM = 0x9025
	EM_ALPHA EM = 0x9026
	EM_CYGNUS_M32R EM = 0x9041
	EM_CYGNUS_V850 EM = 0x9080
	EM_S390_OLD EM = 0xa390
	EM_XTENSA_OLD EM = 0xabc7
	EM_XSTORMY16 EM = 0xad45
	EM_CYGNUS_MN10300 EM = 0xbeef
	EM_CYGNUS_MN10200 EM = 0xdead
	EM_M32C_OLD EM = 0xfeb0
	EM_IQ2000 EM = 0xfeba
	EM_NIOS32 EM = 0xfebb
	EM_CYGNUS_MEP EM = 0xf00d
	EM_MOXIE_OLD EM = 0xfeed
	EM_MICROBLAZE_OLD EM = 0xbaab
	EM_ADAPTEVA_EPIPHANY EM = 0x1223
	EM_OPENRISC EM = 92
	EM_CSKY_OLD EM = 39
)

var emNames = map[EM]string{
	EM_NONE: "EM_NONE",
	EM_M32: "EM_M32",
	EM_SPARC: "EM_SPARC",
	EM_386: "EM_386",
	EM_68K: "EM_68K",
	EM_88K: "EM_88K",
	EM_IAMCU: "EM_IAMCU",
	EM_860: "EM_860",
	EM_MIPS: "EM_MIPS",
	EM_S370: "EM_S370",
	EM_MIPS_RS3_LE: "EM_MIPS_RS3_LE",
	EM_OLD_SPARCV9: "EM_OLD_SPARCV9",
	EM_res012: "EM_res012",
	EM_res013: "EM_res013",
	EM_res014: "EM_res014",
	EM_PARISC: "EM_PARISC",
	EM_res016: "EM_res016",
	EM_PPC_OLD: "EM_PPC_OLD",
	EM_SPARC32PLUS: "EM_SPARC32PLUS",
	EM_960: "EM_960",
	EM_PPC: "EM_PPC",
	EM_PPC64: "EM_PPC64",
	EM_S390: "EM_S390",
	EM_SPU: "EM_SPU",
	EM_res024: "EM_res024",
	EM_res025: "EM_res025",
	EM_res026: "EM_res026",
	EM_res027: "EM_res027",
	EM_res028: "EM_res028",
	EM_res029: "EM_res029",
	EM_res030: "EM_res030",
	EM_res031: "EM_res031",
	EM_res032: "EM_res032",
	EM_res033: "EM_res033",
	EM_res034: "EM_res034",
	EM_res035: "EM_res035",
	EM_V800: "EM_V800",
	EM_FR20: "EM_FR20",
	EM_RH32: "EM_RH32",
	EM_MCORE: "EM_MCORE",
	EM_ARM: "EM_ARM",
	EM_OLD_ALPHA: "EM_OLD_ALPHA",
	EM_SH: "EM_SH",
	EM_SPARCV9: "EM_SPARCV9",
	EM_TRICORE: "EM_TRICORE",
	EM_ARC: "EM_ARC",
	EM_H8_300: "EM_H8_300",
	EM_H8_300H: "EM_H8_300H",
	EM_H8S: "EM_H8S",
	EM_H8_500: "EM_H8_500",
	EM_IA_64: "EM_IA_64",
	EM_MIPS_X: "EM_MIPS_X",
	EM_COLDFIRE: "EM_COLDFIRE",
	EM_68HC12: "EM_68HC12",
	EM_MMA: "EM_MMA",
	EM_PCP: "EM_PCP",
	EM_NCPU: "EM_NCPU",
	EM_NDR1: "EM_NDR1",
	EM_STARCORE: "EM_STARCORE",
	EM_ME16: "EM_ME16",
	EM_ST100: "EM_ST100",
	EM_TINYJ: "EM_TINYJ",
	EM_X86_64: "EM_X86_64",
	EM_PDSP: "EM_PDSP",
	EM_PDP10: "EM_PDP10",
	EM_PDP11: "EM_PDP11",
	EM_FX66: "EM_FX66",
	EM_ST9PLUS: "EM_ST9PLUS",
	EM_ST7: "EM_ST7",
	EM_68HC16: "EM_68HC16",
	EM_68HC11: "EM_68HC11",
	EM_68HC08: "EM_68HC08",
	EM_68HC05: "EM_68HC05",
	EM_SVX: "EM_SVX",
	EM_ST19: "EM_ST19",
	EM_VAX: "EM_VAX",
	EM_CRIS: "EM_CRIS",
	EM_JAVELIN: "EM_JAVELIN",
	EM_FIREPATH: "EM_FIREPATH",
	EM_ZSP: "EM_ZSP",
	EM_MMIX: "EM_MMIX",
	EM_HUANY: "EM_HUANY",
	EM_PRISM: "EM_PRISM",
	EM_AVR: "EM_AVR",
	EM_FR30: "EM_FR30",
	EM_D10V: "EM_D10V",
	EM_D30V: "EM_D30V",
	EM_V850: "EM_V850",
	EM_M32R: "EM_M32R",
	EM_MN10300: "EM_MN10300",
	EM_MN10200: "EM_MN10200",
	EM_PJ: "EM_PJ",
	EM_OR1K: "EM_OR1K",
	EM_ARC_COMPACT: "EM_ARC_COMPACT",
	EM_XTENSA: "EM_XTENSA",
	EM_SCORE_OLD: "EM_SCORE_OLD",
	EM_TMM_GPP: "EM_TMM_GPP",
	EM_NS32K: "EM_NS32K",
	EM_TPC: "EM_TPC",
	EM_PJ_OLD: "EM_PJ_OLD",
	EM_ST200: "EM_ST200",
	EM_IP2K: "EM_IP2K",
	EM_MAX: "EM_MAX",
	EM_CR: "EM_CR",
	EM_F2MC16: "EM_F2MC16",
	EM_MSP430: "EM_MSP430",
	EM_BLACKFIN: "EM_BLACKFIN",
	EM_SE_C33: "EM_SE_C33",
	EM_SEP: "EM_SEP",
	EM_ARCA: "EM_ARCA",
	EM_UNICORE: "EM_UNICORE",
	EM_EXCESS: "EM_EXCESS",
	EM_DXP: "EM_DXP",
	EM_ALTERA_NIOS2: "EM_ALTERA_NIOS2",
	EM_CRX: "EM_CRX",
	EM_CR16_OLD: "EM_CR16_OLD",
	EM_C166: "EM_C166",
	EM_M16C: "EM_M16C",
	EM_DSPIC30F: "EM_DSPIC30F",
	EM_CE: "EM_CE",
	EM_M32C: "EM_M32C",
	EM_res121: "EM_res121",
	EM_res122: "EM_res122",
	EM_res123: "EM_res123",
	EM_res124: "EM_res124",
	EM_res125: "EM_res125",
	EM_res126: "EM_res126",
	EM_res127: "EM_res127",
	EM_res128: "EM_res128",
	EM_res129: "EM_res129",
	EM_res130: "EM_res130",
	EM_TSK3000: "EM_TSK3000",
	EM_RS08: "EM_RS08",
	EM_res133: "EM_res133",
	EM_ECOG2: "EM_ECOG2",
	EM_SCORE: "EM_SCORE",
	EM_DSP24: "EM_DSP24",
	EM_VIDEOCORE3: "EM_VIDEOCORE3",
	EM_LATTICEMICO32: "EM_LATTICEMICO32",
	EM_SE_C17: "EM_SE_C17",
	EM_TI_C6000: "EM_TI_C6000",
	EM_TI_C2000: "EM_TI_C2000",
	EM_TI_C5500: "EM_TI_C5500",
	EM_res143: "EM_res143",
	EM_TI_PRU: "EM_TI_PRU",
	EM_res145: "EM_res145",
	EM_res146: "EM_res146",
	EM_res147: "EM_res147",
	EM_res148: "EM_res148",
	EM_res149: "EM_res149",
	EM_res150: "EM_res150",
	EM_res151: "EM_res151",
	EM_res152: "EM_res152",
	EM_res153: "EM_res153",
	EM_res154: "EM_res154",
	EM_res155: "EM_res155",
	EM_res156: "EM_res156",
	EM_res157: "EM_res157",
	EM_res158: "EM_res158",
	EM_res159: "EM_res159",
	EM_MMDSP_PLUS: "EM_MMDSP_PLUS",
	EM_CYPRESS_M8C: "EM_CYPRESS_M8C",
	EM_R32C: "EM_R32C",
	EM_TRIMEDIA: "EM_TRIMEDIA",
	EM_QDSP6: "EM_QDSP6",
	EM_8051: "EM_8051",
	EM_STXP7X: "EM_STXP7X",
	EM_NDS32: "EM_NDS32",
	EM_ECOG1: "EM_ECOG1",
	EM_MAXQ30: "EM_MAXQ30",
	EM_XIMO16: "EM_XIMO16",
	EM_MANIK: "EM_MANIK",
	EM_CRAYNV2: "EM_CRAYNV2",
	EM_RX: "EM_RX",
	EM_METAG: "EM_METAG",
	EM_MCST_ELBRUS: "EM_MCST_ELBRUS",
	EM_ECOG16: "EM_ECOG16",
	EM_CR16: "EM_CR16",
	EM_ETPU: "EM_ETPU",
	EM_SLE9X: "EM_SLE9X",
	EM_L1OM: "EM_L1OM",
	EM_K1OM: "EM_K1OM",
	EM_INTEL182: "EM_INTEL182",
	EM_AARCH64: "EM_AARCH64",
	EM_ARM184: "EM_ARM184",
	EM_AVR32: "EM_AVR32",
	EM_STM8: "EM_STM8",
	EM_TILE64: "EM_TILE64",
	EM_TILEPRO: "EM_TILEPRO",
	EM_MICROBLAZE: "EM_MICROBLAZE",
	EM_CUDA: "EM_CUDA",
	EM_TILEGX: "EM_TILEGX",
	EM_CLOUDSHIELD: "EM_CLOUDSHIELD",
	EM_COREA_1ST: "EM_COREA_1ST",
	EM_COREA_2ND: "EM_COREA_2ND",
	EM_ARC_COMPACT2: "EM_ARC_COMPACT2",
	EM_OPEN8: "EM_OPEN8",
	EM_RL78: "EM_RL78",
	EM_VIDEOCORE5: "EM_VIDEOCORE5",
	EM_78K0R: "EM_78K0R",
	EM_56800EX: "EM_56800EX",
	EM_BA1: "EM_BA1",
	EM_BA2: "EM_BA2",
	EM_XCORE: "EM_XCORE",
	EM_MCHP_PIC: "EM_MCHP_PIC",
	EM_INTELGT: "EM_INTELGT",
	EM_INTEL206: "EM_INTEL206",
	EM_INTEL207: "EM_INTEL207",
	EM_INTEL208: "EM_INTEL208",
	EM_INTEL209: "EM_INTEL209",
	EM_KM32: "EM_KM32",
	EM_KMX32: "EM_KMX32",
	EM_KMX16: "EM_KMX16",
	EM_KMX8: "EM_KMX8",
	EM_KVARC: "EM_KVARC",
	EM_CDP: "EM_CDP",
	EM_COGE: "EM_COGE",
	EM_COOL: "EM_COOL",
	EM_NORC: "EM_NORC",
	EM_CSR_KALIMBA: "EM_CSR_KALIMBA",
	EM_Z80: "EM_Z80",
	EM_VISIUM: "EM_VISIUM",
	EM_FT32: "EM_FT32",
	EM_MOXIE: "EM_MOXIE",
	EM_AMDGPU: "EM_AMDGPU",
	EM_RISCV: "EM_RISCV",
	EM_LANAI: "EM_LANAI",
	EM_CEVA: "EM_CEVA",
	EM_CEVA_X2: "EM_CEVA_X2",
	EM_BPF: "EM_BPF",
	EM_GRAPHCORE_IPU: "EM_GRAPHCORE_IPU",
	EM_IMG1: "EM_IMG1",
	EM_NFP: "EM_NFP",
	EM_VE: "EM_VE",
	EM_CSKY: "EM_CSKY",
	EM_ARC_COMPACT3_64: "EM_ARC_COMPACT3_64",
	EM_MCS6502: "EM_MCS6502",
	EM_ARC_COMPACT3: "EM_ARC_COMPACT3",
	EM_KVX: "EM_KVX",
	EM_65816: "EM_65816",
	EM_LOONGARCH: "EM_LOONGARCH",
	EM_KF32: "EM_KF32",
	EM_U16_U8CORE: "EM_U16_U8CORE",
	EM_TACHYUM: "EM_TACHYUM",
	EM_56800EF: "EM_56800EF",
	EM_AVR_OLD: "EM_AVR_OLD",
	EM_MSP430_OLD: "EM_MSP430_OLD",
	EM_ADAPTEVA_EPIPHANY: "EM_ADAPTEVA_EPIPHANY",
	EM_MT: "EM_MT",
	EM_CYGNUS_FR30: "EM_CYGNUS_FR30",
	EM_WEBASSEMBLY: "EM_WEBASSEMBLY",
	EM_XC16X: "EM_XC16X",
	EM_S12Z: "EM_S12Z",
	EM_CYGNUS_FRV: "EM_CYGNUS_FRV",
	EM_DLX: "EM_DLX",
	EM_CYGNUS_D10V: "EM_CYGNUS_D10V",
	EM_CYGNUS_D30V: "EM_CYGNUS_D30V",
	EM_IP2K_OLD: "EM_IP2K_OLD",
	EM_CYGNUS_POWERPC: "EM_CYGNUS_POWERPC",
	EM_ALPHA: "EM_ALPHA",
	EM_CYGNUS_M32R: "EM_CYGNUS_M32R",
	EM_CYGNUS_V850: "EM_CYGNUS_V850",
	EM_S390_OLD: "EM_S390_OLD",
	EM_XTENSA_OLD: "EM_XTENSA_OLD",
	EM_XSTORMY16: "EM_XSTORMY16",
	EM_MICROBLAZE_OLD: "EM_MICROBLAZE_OLD",
	EM_CYGNUS_MN10300: "EM_CYGNUS_MN10300",
	EM_CYGNUS_MN10200: "EM_CYGNUS_MN10200",
	EM_CYGNUS_MEP: "EM_CYGNUS_MEP",
	EM_M32C_OLD: "EM_M32C_OLD",
	EM_IQ2000: "EM_IQ2000",
	EM_NIOS32: "EM_NIOS32",
	EM_MOXIE_OLD: "EM_MOXIE_OLD",
}

var emByName = func() map[string]EM {
	m := invert(emNames)
	m["EM_res011"] = EM_res011
	m["EM_VPP550"] = EM_VPP550
	m["EM_RCE"] = EM_RCE
	m["EM_VIDEOCORE"] = EM_VIDEOCORE
	m["EM_SNP1K"] = EM_SNP1K
	m["EM_XGATE"] = EM_XGATE
	m["EM_SCORE7"] = EM_SCORE7
	m["EM_ECOG1X"] = EM_ECOG1X
	m["EM_OPENRISC"] = EM_OPENRISC
	m["EM_CSKY_OLD"] = EM_CSKY_OLD
	return m
}()

var emWidth = fieldWidthFor(maxValue([]EM{EM_MOXIE_OLD}))

func (v EM) FieldWidth() int           { return int(emWidth) }
func (v EM) Encode(little bool) []byte { return encodeGeneric(v, emWidth, little) }
func (v EM) IsKnown() bool             { _, ok := lookupName(emNames, v); return ok }

func (v EM) String() string {
	if s, ok := lookupName(emNames, v); ok {
		return s
	}
	return unknownString("EM", uint32(v))
}

func DecodeEM(b []byte, little bool) (EM, []byte, error) {
	return decodeGeneric[EM](b, emWidth, little)
}

func ParseEM(name string) (EM, error) { return parseName(emByName, name) }
